package dto

// CreateLotRequest création d'un lot de travaux
type CreateLotRequest struct {
	ChantierID uint   `json:"chantier_id" binding:"required"`
	Nom        string `json:"nom" binding:"required,max=255"`
	Numero     string `json:"numero"`
}

// UpdateLotRequest mise à jour partielle d'un lot
type UpdateLotRequest struct {
	Nom    *string `json:"nom" binding:"omitempty,max=255"`
	Numero *string `json:"numero"`
}

// AddPiloteRequest affectation d'un pilote à un lot
type AddPiloteRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}

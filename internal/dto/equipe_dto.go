package dto

// CreateEquipeRequest création d'une équipe
type CreateEquipeRequest struct {
	Nom           string `json:"nom" binding:"required,max=255"`
	ResponsableID *uint  `json:"responsable_id"`
}

// UpdateEquipeRequest mise à jour partielle d'une équipe
type UpdateEquipeRequest struct {
	Nom           *string `json:"nom" binding:"omitempty,max=255"`
	ResponsableID *uint   `json:"responsable_id"`
}

// AddMembreRequest ajout d'un membre à une équipe
type AddMembreRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

package dto

// CreateTacheRequest création d'une tâche
type CreateTacheRequest struct {
	ChantierID  uint   `json:"chantier_id" binding:"required"`
	LotID       *uint  `json:"lot_id"`
	Nom         string `json:"nom" binding:"required,max=255"`
	Description string `json:"description"`
	Statut      string `json:"statut" binding:"omitempty,oneof=a_faire en_cours en_validation termine en_retard en_revision"`
	Progression int    `json:"progression" binding:"omitempty,min=0,max=100"`
	DateDebut   string `json:"date_debut"`
	DateFin     string `json:"date_fin"`
}

// UpdateTacheRequest mise à jour partielle d'une tâche
type UpdateTacheRequest struct {
	Nom         *string `json:"nom" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Statut      *string `json:"statut" binding:"omitempty,oneof=a_faire en_cours en_validation termine en_retard en_revision"`
	Progression *int    `json:"progression" binding:"omitempty,min=0,max=100"`
	DateDebut   *string `json:"date_debut"`
	DateFin     *string `json:"date_fin"`
}

// AddIntervenantRequest affectation d'un intervenant à une tâche
type AddIntervenantRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

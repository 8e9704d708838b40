package dto

// CreateChantierRequest création d'un chantier
type CreateChantierRequest struct {
	Nom           string `json:"nom" binding:"required,max=255"`
	Adresse       string `json:"adresse"`
	Statut        string `json:"statut" binding:"omitempty,oneof=actif en_pause termine"`
	Description   string `json:"description"`
	DateDebut     string `json:"date_debut"`
	DateFin       string `json:"date_fin"`
	ResponsableID *uint  `json:"responsable_id"`
}

// UpdateChantierRequest mise à jour partielle d'un chantier
type UpdateChantierRequest struct {
	Nom           *string `json:"nom" binding:"omitempty,max=255"`
	Adresse       *string `json:"adresse"`
	Statut        *string `json:"statut" binding:"omitempty,oneof=actif en_pause termine"`
	Description   *string `json:"description"`
	DateDebut     *string `json:"date_debut"`
	DateFin       *string `json:"date_fin"`
	ResponsableID *uint   `json:"responsable_id"`
}

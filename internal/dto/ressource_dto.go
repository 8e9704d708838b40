package dto

// CreateRessourceRequest création d'une ressource
type CreateRessourceRequest struct {
	Nom            string  `json:"nom" binding:"required,max=255"`
	Type           string  `json:"type" binding:"omitempty,oneof=materiel humaine materiau"`
	Unite          string  `json:"unite"`
	CoutJournalier float64 `json:"cout_journalier"`
}

// UpdateRessourceRequest mise à jour partielle d'une ressource
type UpdateRessourceRequest struct {
	Nom            *string  `json:"nom" binding:"omitempty,max=255"`
	Type           *string  `json:"type" binding:"omitempty,oneof=materiel humaine materiau"`
	Unite          *string  `json:"unite"`
	CoutJournalier *float64 `json:"cout_journalier"`
}

// CreateAffectationRequest affectation d'une ressource à une tâche
type CreateAffectationRequest struct {
	RessourceID uint    `json:"ressource_id" binding:"required"`
	TacheID     uint    `json:"tache_id" binding:"required"`
	DateDebut   string  `json:"date_debut" binding:"required"`
	DateFin     string  `json:"date_fin" binding:"required"`
	Quantite    float64 `json:"quantite"`
}

// CreateDisponibiliteRequest fenêtre de disponibilité d'une ressource
type CreateDisponibiliteRequest struct {
	RessourceID uint   `json:"ressource_id" binding:"required"`
	DateDebut   string `json:"date_debut" binding:"required"`
	DateFin     string `json:"date_fin" binding:"required"`
	Statut      string `json:"statut" binding:"omitempty,oneof=disponible indisponible"`
}

package dto

// CreatePieceJointeRequest ajout d'un document à une tâche
type CreatePieceJointeRequest struct {
	TacheID uint   `json:"tache_id" binding:"required"`
	Nom     string `json:"nom" binding:"required,max=255"`
	Chemin  string `json:"chemin"`
	Type    string `json:"type"`
}

// CreateRevisionRequest création d'une révision de document
type CreateRevisionRequest struct {
	Indice      string `json:"indice" binding:"required,max=10"`
	Commentaire string `json:"commentaire"`
}

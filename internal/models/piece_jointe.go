package models

import (
	"time"
)

// PieceJointe document rattaché à une tâche (plan, fiche, photo...)
type PieceJointe struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	TacheID   uint      `gorm:"not null;index" json:"tache_id"`
	Nom       string    `gorm:"size:255;not null" json:"nom"`
	Chemin    string    `gorm:"size:500" json:"chemin"`
	Type      string    `gorm:"size:50" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName nom de la table
func (PieceJointe) TableName() string {
	return "pieces_jointes"
}

// Revision version datée d'une pièce jointe.
// L'ordre d'insertion fait foi, l'affichage se fait du plus récent au plus ancien.
type Revision struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	PieceJointeID uint      `gorm:"not null;index" json:"piece_jointe_id"`
	Indice        string    `gorm:"size:10" json:"indice"`
	Commentaire   string    `gorm:"type:text" json:"commentaire"`
	AuteurID      *uint     `json:"auteur_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName nom de la table
func (Revision) TableName() string {
	return "revisions"
}

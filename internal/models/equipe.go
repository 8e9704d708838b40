package models

import (
	"time"
)

// Equipe équipe de travail avec un responsable optionnel
type Equipe struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Nom           string    `gorm:"size:200;not null" json:"nom"`
	ResponsableID *uint     `gorm:"index" json:"responsable_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName nom de la table
func (Equipe) TableName() string {
	return "equipes"
}

// EquipeMembre appartenance d'un utilisateur à une équipe, unique par (équipe, user)
type EquipeMembre struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	EquipeID  uint      `gorm:"not null;uniqueIndex:idx_equipe_membre" json:"equipe_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_equipe_membre" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName nom de la table
func (EquipeMembre) TableName() string {
	return "equipe_membres"
}

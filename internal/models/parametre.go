package models

import (
	"time"
)

// Parametre paramètre de configuration clé→valeur, unique par clé
type Parametre struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Cle       string    `gorm:"uniqueIndex;size:100;not null" json:"cle"`
	Valeur    string    `gorm:"type:text" json:"valeur"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName nom de la table
func (Parametre) TableName() string {
	return "parametres"
}

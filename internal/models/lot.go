package models

import (
	"time"
)

// Lot découpage d'un chantier (terrassement, VRD, gros œuvre...)
type Lot struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ChantierID uint      `gorm:"not null;index" json:"chantier_id"`
	Nom        string    `gorm:"size:200;not null" json:"nom"`
	Numero     string    `gorm:"size:20" json:"numero"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName nom de la table
func (Lot) TableName() string {
	return "lots"
}

// LotPilote affectation d'un pilote à un lot, unique par (lot, user)
type LotPilote struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	LotID     uint      `gorm:"not null;uniqueIndex:idx_lot_pilote" json:"lot_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_lot_pilote" json:"user_id"`
	Role      string    `gorm:"size:50" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName nom de la table
func (LotPilote) TableName() string {
	return "lot_pilotes"
}

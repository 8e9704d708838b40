package models

import (
	"time"
)

// Statuts chantier
const (
	ChantierActif   = "actif"
	ChantierEnPause = "en_pause"
	ChantierTermine = "termine"
)

// Chantier site de construction, agrégat racine
type Chantier struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Nom           string     `gorm:"size:200;not null" json:"nom"`
	Adresse       string     `gorm:"size:255" json:"adresse"`
	Statut        string     `gorm:"size:20;default:'actif'" json:"statut"`
	Description   string     `gorm:"type:text" json:"description"`
	DateDebut     *time.Time `json:"date_debut"`
	DateFin       *time.Time `json:"date_fin"`
	ResponsableID *uint      `gorm:"index" json:"responsable_id"`
	CreatedAt     time.Time  `json:"created_at"`
}

// TableName nom de la table
func (Chantier) TableName() string {
	return "chantiers"
}

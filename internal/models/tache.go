package models

import (
	"time"
)

// Statuts tâche
const (
	TacheAFaire       = "a_faire"
	TacheEnCours      = "en_cours"
	TacheEnValidation = "en_validation"
	TacheTerminee     = "termine"
	TacheEnRetard     = "en_retard"
	TacheEnRevision   = "en_revision"
)

// StatutsTache énumération complète des statuts admis
var StatutsTache = []string{
	TacheAFaire,
	TacheEnCours,
	TacheEnValidation,
	TacheTerminee,
	TacheEnRetard,
	TacheEnRevision,
}

// Tache unité de travail suivie, rattachée à un chantier et
// optionnellement à un lot du même chantier
type Tache struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	ChantierID  uint       `gorm:"not null;index" json:"chantier_id"`
	LotID       *uint      `gorm:"index" json:"lot_id"`
	Nom         string     `gorm:"size:200;not null" json:"nom"`
	Description string     `gorm:"type:text" json:"description"`
	Statut      string     `gorm:"size:20;default:'a_faire'" json:"statut"`
	Progression int        `gorm:"default:0" json:"progression"`
	DateDebut   *time.Time `json:"date_debut"`
	DateFin     *time.Time `json:"date_fin"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	UpdatedBy   *uint      `json:"updated_by"`
}

// TableName nom de la table
func (Tache) TableName() string {
	return "taches"
}

// TacheIntervenant affectation d'un intervenant à une tâche, unique par (tâche, user)
type TacheIntervenant struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	TacheID   uint      `gorm:"not null;uniqueIndex:idx_tache_intervenant" json:"tache_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_tache_intervenant" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName nom de la table
func (TacheIntervenant) TableName() string {
	return "tache_intervenants"
}

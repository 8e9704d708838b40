package models

import (
	"time"
)

// Types de ressource
const (
	RessourceMateriel = "materiel"
	RessourceHumaine  = "humaine"
	RessourceMateriau = "materiau"
)

// Statuts de disponibilité
const (
	DispoDisponible   = "disponible"
	DispoIndisponible = "indisponible"
)

// Ressource moyen mobilisable sur les tâches (engin, équipe, matériau)
type Ressource struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Nom            string    `gorm:"size:200;not null" json:"nom"`
	Type           string    `gorm:"size:50" json:"type"`
	Unite          string    `gorm:"size:20" json:"unite"`
	CoutJournalier float64   `gorm:"default:0" json:"cout_journalier"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName nom de la table
func (Ressource) TableName() string {
	return "ressources"
}

// RessourceAffectation affectation d'une ressource à une tâche sur une période
type RessourceAffectation struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	RessourceID uint      `gorm:"not null;index" json:"ressource_id"`
	TacheID     uint      `gorm:"not null;index" json:"tache_id"`
	DateDebut   time.Time `gorm:"not null" json:"date_debut"`
	DateFin     time.Time `gorm:"not null" json:"date_fin"`
	Quantite    float64   `gorm:"default:1" json:"quantite"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName nom de la table
func (RessourceAffectation) TableName() string {
	return "ressource_affectations"
}

// RessourceDisponibilite fenêtre de disponibilité ou d'indisponibilité d'une ressource
type RessourceDisponibilite struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	RessourceID uint      `gorm:"not null;index" json:"ressource_id"`
	DateDebut   time.Time `gorm:"not null" json:"date_debut"`
	DateFin     time.Time `gorm:"not null" json:"date_fin"`
	Statut      string    `gorm:"size:20;default:'disponible'" json:"statut"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName nom de la table
func (RessourceDisponibilite) TableName() string {
	return "ressource_disponibilites"
}

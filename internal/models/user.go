package models

import (
	"time"
)

// Rôles utilisateur
const (
	RoleDirecteur   = "directeur"
	RoleConducteur  = "conducteur_travaux"
	RoleChefEquipe  = "chef_equipe"
	RoleIntervenant = "intervenant"
)

// User utilisateur de l'application
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Nom          string    `gorm:"size:100;not null" json:"nom"`
	Role         string    `gorm:"size:50;not null" json:"role"`
	Email        string    `gorm:"size:255" json:"email"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName nom de la table
func (User) TableName() string {
	return "users"
}

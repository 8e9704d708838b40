package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Types d'activité
const (
	ActiviteCreation          = "creation"
	ActiviteModification      = "modification"
	ActiviteChangementStatut  = "changement_statut"
	ActiviteAffectation       = "affectation"
	ActiviteDocument          = "document"
	ActiviteRevisionDocument  = "revision_document"
	ActiviteSuppression       = "suppression"
)

// Types de cible pour activités et notifications
const (
	TargetChantier  = "chantier"
	TargetLot       = "lot"
	TargetTache     = "tache"
	TargetRessource = "ressource"
	TargetEquipe    = "equipe"
	TargetUser      = "user"
)

// Activite entrée immuable du journal d'activité
type Activite struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ActeurID    *uint     `gorm:"index" json:"acteur_id"`
	TargetID    uint      `gorm:"index:idx_activite_target" json:"target_id"`
	TargetType  string    `gorm:"size:30;index:idx_activite_target" json:"target_type"`
	Metadata    JSONMap   `gorm:"type:text" json:"metadata"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName nom de la table
func (Activite) TableName() string {
	return "activites"
}

// JSONMap colonne texte sérialisée en JSON
type JSONMap map[string]interface{}

// Scan implémente sql.Scanner
func (j *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSONMap)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}

	return json.Unmarshal(bytes, j)
}

// Value implémente driver.Valuer
func (j JSONMap) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

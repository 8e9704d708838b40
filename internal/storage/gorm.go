package storage

import (
	"errors"

	"chantier-go/internal/models"

	"gorm.io/gorm"
)

// GormStore implémentation de Store adossée à gorm/SQLite. Chaque mutation
// s'exécute dans une transaction : cascades et effets de bord (activités,
// notifications) sont validés ou annulés d'un bloc, exactement comme la
// section critique du store mémoire.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore construit le store sur une base déjà migrée
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

// asNotFound convertit gorm.ErrRecordNotFound en NotFoundError du domaine
func asNotFound(err error, entite string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entite: entite, ID: id}
	}
	return err
}

// acteurNomTx résout le nom d'un acteur dans la transaction, référence
// cassée tolérée
func acteurNomTx(tx *gorm.DB, id uint) string {
	if id == 0 {
		return acteurInconnu
	}
	var u models.User
	if err := tx.First(&u, id).Error; err != nil {
		return acteurInconnu
	}
	return u.Nom
}

// dispatchTx écrit les lignes Activite et Notification dans la transaction
// de la mutation qui a produit les événements
func dispatchTx(tx *gorm.DB, events ...Event) error {
	for _, ev := range events {
		activite := models.Activite{
			Type:        ev.Type,
			Description: ev.Description,
			ActeurID:    ev.ActeurID,
			TargetID:    ev.TargetID,
			TargetType:  ev.TargetType,
			Metadata:    ev.Metadata,
		}
		if err := tx.Create(&activite).Error; err != nil {
			return err
		}
		for _, userID := range ev.Notifier {
			notification := models.Notification{
				UserID:     userID,
				Message:    ev.Message,
				Lu:         false,
				TargetID:   ev.TargetID,
				TargetType: ev.TargetType,
			}
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// purgeFeedTx supprime activités et notifications ciblant une entité supprimée
func purgeFeedTx(tx *gorm.DB, targetType string, targetID uint) error {
	if err := tx.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Delete(&models.Activite{}).Error; err != nil {
		return err
	}
	return tx.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Delete(&models.Notification{}).Error
}

// destinatairesTx intervenants d'une tâche à notifier, acteur exclu
func destinatairesTx(tx *gorm.DB, tacheID, acteurID uint) ([]uint, error) {
	var out []uint
	err := tx.Model(&models.TacheIntervenant{}).
		Where("tache_id = ? AND user_id <> ?", tacheID, acteurID).
		Order("id").
		Pluck("user_id", &out).Error
	return out, err
}

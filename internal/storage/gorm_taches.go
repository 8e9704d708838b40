package storage

import (
	"errors"
	"time"

	"chantier-go/internal/models"

	"gorm.io/gorm"
)

// CreateTache insère une tâche sous un chantier existant, lot du même
// chantier si fourni
func (s *GormStore) CreateTache(t *models.Tache, acteurID uint) (*models.Tache, error) {
	row := *t
	row.ID = 0
	if row.Statut == "" {
		row.Statut = models.TacheAFaire
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var chantier models.Chantier
		if err := tx.First(&chantier, row.ChantierID).Error; err != nil {
			return asNotFound(err, "chantier", row.ChantierID)
		}
		if row.LotID != nil {
			var lot models.Lot
			if err := tx.First(&lot, *row.LotID).Error; err != nil {
				return asNotFound(err, "lot", *row.LotID)
			}
			if lot.ChantierID != row.ChantierID {
				return &ConflictError{Raison: "le lot n'appartient pas au chantier de la tâche"}
			}
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return dispatchTx(tx, evTacheCreee(acteurNomTx(tx, acteurID), acteurID, &row))
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetTache retourne une tâche par id
func (s *GormStore) GetTache(id uint) (*models.Tache, error) {
	var t models.Tache
	if err := s.db.First(&t, id).Error; err != nil {
		return nil, asNotFound(err, "tâche", id)
	}
	return &t, nil
}

// ListTaches retourne toutes les tâches
func (s *GormStore) ListTaches() ([]*models.Tache, error) {
	var taches []*models.Tache
	if err := s.db.Order("id").Find(&taches).Error; err != nil {
		return nil, err
	}
	return taches, nil
}

// ListTachesByChantier retourne les tâches d'un chantier, lots compris
func (s *GormStore) ListTachesByChantier(chantierID uint) ([]*models.Tache, error) {
	var taches []*models.Tache
	if err := s.db.Where("chantier_id = ?", chantierID).Order("id").Find(&taches).Error; err != nil {
		return nil, err
	}
	return taches, nil
}

// ListTachesByLot retourne les tâches d'un lot
func (s *GormStore) ListTachesByLot(lotID uint) ([]*models.Tache, error) {
	var taches []*models.Tache
	if err := s.db.Where("lot_id = ?", lotID).Order("id").Find(&taches).Error; err != nil {
		return nil, err
	}
	return taches, nil
}

// UpdateTache fusionne les champs fournis avec la même politique de statut
// que le store mémoire : même valeur = no-op, changement réel = exactement
// une activité de changement de statut
func (s *GormStore) UpdateTache(id uint, patch TachePatch) (*models.Tache, error) {
	var t models.Tache
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, id).Error; err != nil {
			return asNotFound(err, "tâche", id)
		}

		changed := false
		var events []Event

		if patch.Nom != nil && *patch.Nom != t.Nom {
			t.Nom = *patch.Nom
			changed = true
		}
		if patch.Description != nil && *patch.Description != t.Description {
			t.Description = *patch.Description
			changed = true
		}
		if patch.Progression != nil && *patch.Progression != t.Progression {
			t.Progression = *patch.Progression
			changed = true
		}
		if patch.DateDebut != nil {
			t.DateDebut = patch.DateDebut
			changed = true
		}
		if patch.DateFin != nil {
			t.DateFin = patch.DateFin
			changed = true
		}
		if patch.Statut != nil && *patch.Statut != t.Statut {
			ancien := t.Statut
			t.Statut = *patch.Statut
			changed = true
			var acteurID uint
			if patch.UpdatedBy != nil {
				acteurID = *patch.UpdatedBy
			}
			events = append(events, evStatutChange(acteurNomTx(tx, acteurID), acteurID, &t, ancien, *patch.Statut))
		}

		if !changed {
			return nil
		}

		t.UpdatedAt = time.Now()
		if patch.UpdatedBy != nil {
			t.UpdatedBy = patch.UpdatedBy
		}
		if err := tx.Save(&t).Error; err != nil {
			return err
		}
		return dispatchTx(tx, events...)
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTache supprime une tâche et tout ce qu'elle possède
func (s *GormStore) DeleteTache(id uint) (bool, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var t models.Tache
		if err := tx.First(&t, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		return deleteTacheTx(tx, id)
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// deleteTacheTx cascade interne de la tâche dans la transaction
func deleteTacheTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("tache_id = ?", id).Delete(&models.TacheIntervenant{}).Error; err != nil {
		return err
	}
	var piecesJointes []models.PieceJointe
	if err := tx.Where("tache_id = ?", id).Find(&piecesJointes).Error; err != nil {
		return err
	}
	for _, pj := range piecesJointes {
		if err := deletePieceJointeTx(tx, pj.ID); err != nil {
			return err
		}
	}
	if err := tx.Where("tache_id = ?", id).Delete(&models.RessourceAffectation{}).Error; err != nil {
		return err
	}
	if err := purgeFeedTx(tx, models.TargetTache, id); err != nil {
		return err
	}
	return tx.Delete(&models.Tache{}, id).Error
}

// AddTacheIntervenant affecte un intervenant, paire unique fusionnée sans erreur
func (s *GormStore) AddTacheIntervenant(tacheID, userID, acteurID uint) (*models.TacheIntervenant, error) {
	var row models.TacheIntervenant
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tache models.Tache
		if err := tx.First(&tache, tacheID).Error; err != nil {
			return asNotFound(err, "tâche", tacheID)
		}
		var intervenant models.User
		if err := tx.First(&intervenant, userID).Error; err != nil {
			return asNotFound(err, "utilisateur", userID)
		}

		err := tx.Where("tache_id = ? AND user_id = ?", tacheID, userID).First(&row).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row = models.TacheIntervenant{TacheID: tacheID, UserID: userID}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return dispatchTx(tx, evIntervenantAjoute(acteurNomTx(tx, acteurID), acteurID, intervenant.Nom, &tache))
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// RemoveTacheIntervenant retire un intervenant d'une tâche
func (s *GormStore) RemoveTacheIntervenant(tacheID, userID uint) (bool, error) {
	res := s.db.Where("tache_id = ? AND user_id = ?", tacheID, userID).Delete(&models.TacheIntervenant{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListTacheIntervenants retourne les intervenants d'une tâche
func (s *GormStore) ListTacheIntervenants(tacheID uint) ([]*models.TacheIntervenant, error) {
	var intervenants []*models.TacheIntervenant
	if err := s.db.Where("tache_id = ?", tacheID).Order("id").Find(&intervenants).Error; err != nil {
		return nil, err
	}
	return intervenants, nil
}

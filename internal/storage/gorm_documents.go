package storage

import (
	"errors"
	"time"

	"chantier-go/internal/models"

	"gorm.io/gorm"
)

// CreatePieceJointe attache un document à une tâche existante et notifie les
// intervenants de la tâche autres que l'acteur
func (s *GormStore) CreatePieceJointe(pj *models.PieceJointe, acteurID uint) (*models.PieceJointe, error) {
	row := *pj
	row.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tache models.Tache
		if err := tx.First(&tache, row.TacheID).Error; err != nil {
			return asNotFound(err, "tâche", row.TacheID)
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		dest, err := destinatairesTx(tx, tache.ID, acteurID)
		if err != nil {
			return err
		}
		return dispatchTx(tx, evDocumentAjoute(acteurNomTx(tx, acteurID), acteurID, &row, &tache, dest))
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetPieceJointe retourne une pièce jointe par id
func (s *GormStore) GetPieceJointe(id uint) (*models.PieceJointe, error) {
	var pj models.PieceJointe
	if err := s.db.First(&pj, id).Error; err != nil {
		return nil, asNotFound(err, "pièce jointe", id)
	}
	return &pj, nil
}

// ListPiecesJointesByTache retourne les documents d'une tâche
func (s *GormStore) ListPiecesJointesByTache(tacheID uint) ([]*models.PieceJointe, error) {
	var piecesJointes []*models.PieceJointe
	if err := s.db.Where("tache_id = ?", tacheID).Order("id").Find(&piecesJointes).Error; err != nil {
		return nil, err
	}
	return piecesJointes, nil
}

// DeletePieceJointe supprime un document et ses révisions
func (s *GormStore) DeletePieceJointe(id uint) (bool, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pj models.PieceJointe
		if err := tx.First(&pj, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		return deletePieceJointeTx(tx, id)
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// deletePieceJointeTx cascade interne dans la transaction
func deletePieceJointeTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("piece_jointe_id = ?", id).Delete(&models.Revision{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.PieceJointe{}, id).Error
}

// CreateRevision crée une révision et force la tâche parente en en_revision
// si elle n'y est pas déjà, avec exactement une activité de changement de
// statut pour la transition forcée
func (s *GormStore) CreateRevision(r *models.Revision, acteurID uint) (*models.Revision, error) {
	row := *r
	row.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pj models.PieceJointe
		if err := tx.First(&pj, row.PieceJointeID).Error; err != nil {
			return asNotFound(err, "pièce jointe", row.PieceJointeID)
		}
		var tache models.Tache
		if err := tx.First(&tache, pj.TacheID).Error; err != nil {
			return asNotFound(err, "tâche", pj.TacheID)
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		acteurNom := acteurNomTx(tx, acteurID)
		dest, err := destinatairesTx(tx, tache.ID, acteurID)
		if err != nil {
			return err
		}
		events := []Event{evRevisionCreee(acteurNom, acteurID, &row, &pj, &tache, dest)}

		if tache.Statut != models.TacheEnRevision {
			ancien := tache.Statut
			tache.Statut = models.TacheEnRevision
			tache.UpdatedAt = time.Now()
			if acteurID != 0 {
				tache.UpdatedBy = acteurRef(acteurID)
			}
			if err := tx.Save(&tache).Error; err != nil {
				return err
			}
			events = append(events, evStatutChange(acteurNom, acteurID, &tache, ancien, models.TacheEnRevision))
		}

		return dispatchTx(tx, events...)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListRevisionsByPieceJointe retourne les révisions, la plus récente d'abord
func (s *GormStore) ListRevisionsByPieceJointe(pieceJointeID uint) ([]*models.Revision, error) {
	var revisions []*models.Revision
	if err := s.db.Where("piece_jointe_id = ?", pieceJointeID).Order("id DESC").Find(&revisions).Error; err != nil {
		return nil, err
	}
	return revisions, nil
}

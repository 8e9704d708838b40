package storage

import (
	"errors"

	"chantier-go/internal/models"

	"gorm.io/gorm"
)

// CreateLot insère un lot sous un chantier existant, activité au niveau chantier
func (s *GormStore) CreateLot(l *models.Lot, acteurID uint) (*models.Lot, error) {
	row := *l
	row.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var chantier models.Chantier
		if err := tx.First(&chantier, row.ChantierID).Error; err != nil {
			return asNotFound(err, "chantier", row.ChantierID)
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return dispatchTx(tx, evLotCree(acteurNomTx(tx, acteurID), acteurID, &row, chantier.Nom))
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetLot retourne un lot par id
func (s *GormStore) GetLot(id uint) (*models.Lot, error) {
	var l models.Lot
	if err := s.db.First(&l, id).Error; err != nil {
		return nil, asNotFound(err, "lot", id)
	}
	return &l, nil
}

// ListLotsByChantier retourne les lots d'un chantier
func (s *GormStore) ListLotsByChantier(chantierID uint) ([]*models.Lot, error) {
	var lots []*models.Lot
	if err := s.db.Where("chantier_id = ?", chantierID).Order("id").Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

// UpdateLot fusionne les champs fournis
func (s *GormStore) UpdateLot(id uint, patch LotPatch) (*models.Lot, error) {
	var l models.Lot
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&l, id).Error; err != nil {
			return asNotFound(err, "lot", id)
		}
		if patch.Nom != nil {
			l.Nom = *patch.Nom
		}
		if patch.Numero != nil {
			l.Numero = *patch.Numero
		}
		return tx.Save(&l).Error
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteLot supprime un lot, ses pilotes et ses tâches
func (s *GormStore) DeleteLot(id uint) (bool, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var l models.Lot
		if err := tx.First(&l, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		return deleteLotTx(tx, id)
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// deleteLotTx cascade interne du lot dans la transaction
func deleteLotTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("lot_id = ?", id).Delete(&models.LotPilote{}).Error; err != nil {
		return err
	}
	var taches []models.Tache
	if err := tx.Where("lot_id = ?", id).Find(&taches).Error; err != nil {
		return err
	}
	for _, t := range taches {
		if err := deleteTacheTx(tx, t.ID); err != nil {
			return err
		}
	}
	if err := purgeFeedTx(tx, models.TargetLot, id); err != nil {
		return err
	}
	return tx.Delete(&models.Lot{}, id).Error
}

// GetLotStats compte les tâches du lot et celles terminées
func (s *GormStore) GetLotStats(id uint) (*TacheStats, error) {
	var l models.Lot
	if err := s.db.First(&l, id).Error; err != nil {
		return nil, asNotFound(err, "lot", id)
	}

	var total, terminees int64
	if err := s.db.Model(&models.Tache{}).Where("lot_id = ?", id).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Tache{}).
		Where("lot_id = ? AND statut = ?", id, models.TacheTerminee).
		Count(&terminees).Error; err != nil {
		return nil, err
	}
	return &TacheStats{TachesCount: int(total), TachesTermineesCount: int(terminees)}, nil
}

// AddLotPilote affecte un pilote à un lot, paire unique fusionnée sans erreur
func (s *GormStore) AddLotPilote(lotID, userID uint, role string, acteurID uint) (*models.LotPilote, error) {
	var row models.LotPilote
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var lot models.Lot
		if err := tx.First(&lot, lotID).Error; err != nil {
			return asNotFound(err, "lot", lotID)
		}
		var pilote models.User
		if err := tx.First(&pilote, userID).Error; err != nil {
			return asNotFound(err, "utilisateur", userID)
		}

		err := tx.Where("lot_id = ? AND user_id = ?", lotID, userID).First(&row).Error
		if err == nil {
			if role != "" && row.Role != role {
				row.Role = role
				return tx.Save(&row).Error
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row = models.LotPilote{LotID: lotID, UserID: userID, Role: role}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return dispatchTx(tx, evPiloteAjoute(acteurNomTx(tx, acteurID), acteurID, pilote.Nom, &lot))
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// RemoveLotPilote retire un pilote d'un lot
func (s *GormStore) RemoveLotPilote(lotID, userID uint) (bool, error) {
	res := s.db.Where("lot_id = ? AND user_id = ?", lotID, userID).Delete(&models.LotPilote{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListLotPilotes retourne les pilotes d'un lot
func (s *GormStore) ListLotPilotes(lotID uint) ([]*models.LotPilote, error) {
	var pilotes []*models.LotPilote
	if err := s.db.Where("lot_id = ?", lotID).Order("id").Find(&pilotes).Error; err != nil {
		return nil, err
	}
	return pilotes, nil
}

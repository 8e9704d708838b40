package storage

import (
	"errors"

	"chantier-go/internal/models"

	"gorm.io/gorm"
)

// CreateChantier insère un chantier après contrôle du responsable référencé
func (s *GormStore) CreateChantier(c *models.Chantier, acteurID uint) (*models.Chantier, error) {
	row := *c
	row.ID = 0
	if row.Statut == "" {
		row.Statut = models.ChantierActif
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if row.ResponsableID != nil {
			var u models.User
			if err := tx.First(&u, *row.ResponsableID).Error; err != nil {
				return asNotFound(err, "utilisateur", *row.ResponsableID)
			}
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return dispatchTx(tx, evChantierCree(acteurNomTx(tx, acteurID), acteurID, &row))
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetChantier retourne un chantier par id
func (s *GormStore) GetChantier(id uint) (*models.Chantier, error) {
	var c models.Chantier
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, asNotFound(err, "chantier", id)
	}
	return &c, nil
}

// ListChantiers retourne tous les chantiers
func (s *GormStore) ListChantiers() ([]*models.Chantier, error) {
	var chantiers []*models.Chantier
	if err := s.db.Order("id").Find(&chantiers).Error; err != nil {
		return nil, err
	}
	return chantiers, nil
}

// UpdateChantier fusionne les champs fournis
func (s *GormStore) UpdateChantier(id uint, patch ChantierPatch) (*models.Chantier, error) {
	var c models.Chantier
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			return asNotFound(err, "chantier", id)
		}
		if patch.ResponsableID != nil {
			var u models.User
			if err := tx.First(&u, *patch.ResponsableID).Error; err != nil {
				return asNotFound(err, "utilisateur", *patch.ResponsableID)
			}
			c.ResponsableID = patch.ResponsableID
		}
		if patch.Nom != nil {
			c.Nom = *patch.Nom
		}
		if patch.Adresse != nil {
			c.Adresse = *patch.Adresse
		}
		if patch.Statut != nil {
			c.Statut = *patch.Statut
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.DateDebut != nil {
			c.DateDebut = patch.DateDebut
		}
		if patch.DateFin != nil {
			c.DateFin = patch.DateFin
		}
		return tx.Save(&c).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteChantier supprime un chantier, cascade sur lots puis tâches directes
func (s *GormStore) DeleteChantier(id uint) (bool, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var c models.Chantier
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		var lots []models.Lot
		if err := tx.Where("chantier_id = ?", id).Find(&lots).Error; err != nil {
			return err
		}
		for _, l := range lots {
			if err := deleteLotTx(tx, l.ID); err != nil {
				return err
			}
		}

		var taches []models.Tache
		if err := tx.Where("chantier_id = ?", id).Find(&taches).Error; err != nil {
			return err
		}
		for _, t := range taches {
			if err := deleteTacheTx(tx, t.ID); err != nil {
				return err
			}
		}

		if err := purgeFeedTx(tx, models.TargetChantier, id); err != nil {
			return err
		}
		return tx.Delete(&models.Chantier{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// GetChantierStats compte les tâches du chantier et celles terminées
func (s *GormStore) GetChantierStats(id uint) (*TacheStats, error) {
	var c models.Chantier
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, asNotFound(err, "chantier", id)
	}

	var total, terminees int64
	if err := s.db.Model(&models.Tache{}).Where("chantier_id = ?", id).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Tache{}).
		Where("chantier_id = ? AND statut = ?", id, models.TacheTerminee).
		Count(&terminees).Error; err != nil {
		return nil, err
	}
	return &TacheStats{TachesCount: int(total), TachesTermineesCount: int(terminees)}, nil
}

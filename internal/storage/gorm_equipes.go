package storage

import (
	"errors"

	"chantier-go/internal/models"

	"gorm.io/gorm"
)

// CreateEquipe insère une équipe après contrôle du responsable référencé
func (s *GormStore) CreateEquipe(e *models.Equipe) (*models.Equipe, error) {
	row := *e
	row.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if row.ResponsableID != nil {
			var u models.User
			if err := tx.First(&u, *row.ResponsableID).Error; err != nil {
				return asNotFound(err, "utilisateur", *row.ResponsableID)
			}
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetEquipe retourne une équipe par id
func (s *GormStore) GetEquipe(id uint) (*models.Equipe, error) {
	var e models.Equipe
	if err := s.db.First(&e, id).Error; err != nil {
		return nil, asNotFound(err, "équipe", id)
	}
	return &e, nil
}

// ListEquipes retourne toutes les équipes
func (s *GormStore) ListEquipes() ([]*models.Equipe, error) {
	var equipes []*models.Equipe
	if err := s.db.Order("id").Find(&equipes).Error; err != nil {
		return nil, err
	}
	return equipes, nil
}

// UpdateEquipe fusionne les champs fournis
func (s *GormStore) UpdateEquipe(id uint, patch EquipePatch) (*models.Equipe, error) {
	var e models.Equipe
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&e, id).Error; err != nil {
			return asNotFound(err, "équipe", id)
		}
		if patch.ResponsableID != nil {
			var u models.User
			if err := tx.First(&u, *patch.ResponsableID).Error; err != nil {
				return asNotFound(err, "utilisateur", *patch.ResponsableID)
			}
			e.ResponsableID = patch.ResponsableID
		}
		if patch.Nom != nil {
			e.Nom = *patch.Nom
		}
		return tx.Save(&e).Error
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEquipe supprime une équipe et ses membres
func (s *GormStore) DeleteEquipe(id uint) (bool, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var e models.Equipe
		if err := tx.First(&e, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		if err := tx.Where("equipe_id = ?", id).Delete(&models.EquipeMembre{}).Error; err != nil {
			return err
		}
		if err := purgeFeedTx(tx, models.TargetEquipe, id); err != nil {
			return err
		}
		return tx.Delete(&models.Equipe{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// AddEquipeMembre ajoute un membre, paire unique fusionnée sans erreur
func (s *GormStore) AddEquipeMembre(equipeID, userID uint) (*models.EquipeMembre, error) {
	var row models.EquipeMembre
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var e models.Equipe
		if err := tx.First(&e, equipeID).Error; err != nil {
			return asNotFound(err, "équipe", equipeID)
		}
		var u models.User
		if err := tx.First(&u, userID).Error; err != nil {
			return asNotFound(err, "utilisateur", userID)
		}

		err := tx.Where("equipe_id = ? AND user_id = ?", equipeID, userID).First(&row).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row = models.EquipeMembre{EquipeID: equipeID, UserID: userID}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// RemoveEquipeMembre retire un membre d'une équipe
func (s *GormStore) RemoveEquipeMembre(equipeID, userID uint) (bool, error) {
	res := s.db.Where("equipe_id = ? AND user_id = ?", equipeID, userID).Delete(&models.EquipeMembre{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListEquipeMembres retourne les membres d'une équipe
func (s *GormStore) ListEquipeMembres(equipeID uint) ([]*models.EquipeMembre, error) {
	var membres []*models.EquipeMembre
	if err := s.db.Where("equipe_id = ?", equipeID).Order("id").Find(&membres).Error; err != nil {
		return nil, err
	}
	return membres, nil
}

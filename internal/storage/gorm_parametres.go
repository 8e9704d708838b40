package storage

import (
	"errors"

	"chantier-go/internal/models"

	"gorm.io/gorm"
)

// SetParametre crée le paramètre ou met à jour sa valeur si la clé existe déjà
func (s *GormStore) SetParametre(cle, valeur string) (*models.Parametre, error) {
	var row models.Parametre
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("cle = ?", cle).First(&row).Error
		if err == nil {
			row.Valeur = valeur
			return tx.Save(&row).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		row = models.Parametre{Cle: cle, Valeur: valeur}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetParametre retourne un paramètre par clé
func (s *GormStore) GetParametre(cle string) (*models.Parametre, error) {
	var p models.Parametre
	if err := s.db.Where("cle = ?", cle).First(&p).Error; err != nil {
		return nil, asNotFound(err, "paramètre", 0)
	}
	return &p, nil
}

// ListParametres retourne tous les paramètres
func (s *GormStore) ListParametres() ([]*models.Parametre, error) {
	var parametres []*models.Parametre
	if err := s.db.Order("id").Find(&parametres).Error; err != nil {
		return nil, err
	}
	return parametres, nil
}

// DeleteParametre supprime un paramètre par clé
func (s *GormStore) DeleteParametre(cle string) (bool, error) {
	res := s.db.Where("cle = ?", cle).Delete(&models.Parametre{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

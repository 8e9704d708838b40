package storage

import (
	"errors"

	"chantier-go/internal/models"

	"gorm.io/gorm"
)

// CreateUser insère un utilisateur, username unique
func (s *GormStore) CreateUser(u *models.User) (*models.User, error) {
	row := *u
	row.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existant models.User
		err := tx.Where("username = ?", row.Username).First(&existant).Error
		if err == nil {
			return &ConflictError{Raison: "ce nom d'utilisateur est déjà pris"}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetUser retourne un utilisateur par id
func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, asNotFound(err, "utilisateur", id)
	}
	return &u, nil
}

// GetUserByUsername retourne un utilisateur par identifiant de connexion
func (s *GormStore) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, asNotFound(err, "utilisateur", 0)
	}
	return &u, nil
}

// ListUsers retourne tous les utilisateurs
func (s *GormStore) ListUsers() ([]*models.User, error) {
	var users []*models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser fusionne les champs fournis
func (s *GormStore) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	var u models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, id).Error; err != nil {
			return asNotFound(err, "utilisateur", id)
		}
		if patch.Nom != nil {
			u.Nom = *patch.Nom
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Username != nil {
			u.Username = *patch.Username
		}
		if patch.PasswordHash != nil {
			u.PasswordHash = *patch.PasswordHash
		}
		return tx.Save(&u).Error
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser supprime un utilisateur. Refusé pour un compte directeur, les
// lignes de jointure sont détachées, les références optionnelles restent.
func (s *GormStore) DeleteUser(id uint) (bool, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.First(&u, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if u.Role == models.RoleDirecteur {
			return &ForbiddenError{Raison: "le compte directeur ne peut pas être supprimé"}
		}
		found = true

		if err := tx.Where("user_id = ?", id).Delete(&models.LotPilote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.TacheIntervenant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.EquipeMembre{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

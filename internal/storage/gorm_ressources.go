package storage

import (
	"errors"
	"time"

	"chantier-go/internal/models"

	"gorm.io/gorm"
)

// CreateRessource insère une ressource
func (s *GormStore) CreateRessource(r *models.Ressource) (*models.Ressource, error) {
	row := *r
	row.ID = 0
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetRessource retourne une ressource par id
func (s *GormStore) GetRessource(id uint) (*models.Ressource, error) {
	var r models.Ressource
	if err := s.db.First(&r, id).Error; err != nil {
		return nil, asNotFound(err, "ressource", id)
	}
	return &r, nil
}

// ListRessources retourne toutes les ressources
func (s *GormStore) ListRessources() ([]*models.Ressource, error) {
	var ressources []*models.Ressource
	if err := s.db.Order("id").Find(&ressources).Error; err != nil {
		return nil, err
	}
	return ressources, nil
}

// UpdateRessource fusionne les champs fournis
func (s *GormStore) UpdateRessource(id uint, patch RessourcePatch) (*models.Ressource, error) {
	var r models.Ressource
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&r, id).Error; err != nil {
			return asNotFound(err, "ressource", id)
		}
		if patch.Nom != nil {
			r.Nom = *patch.Nom
		}
		if patch.Type != nil {
			r.Type = *patch.Type
		}
		if patch.Unite != nil {
			r.Unite = *patch.Unite
		}
		if patch.CoutJournalier != nil {
			r.CoutJournalier = *patch.CoutJournalier
		}
		return tx.Save(&r).Error
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteRessource supprime une ressource, ses affectations et disponibilités
func (s *GormStore) DeleteRessource(id uint) (bool, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var r models.Ressource
		if err := tx.First(&r, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		if err := tx.Where("ressource_id = ?", id).Delete(&models.RessourceAffectation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ressource_id = ?", id).Delete(&models.RessourceDisponibilite{}).Error; err != nil {
			return err
		}
		if err := purgeFeedTx(tx, models.TargetRessource, id); err != nil {
			return err
		}
		return tx.Delete(&models.Ressource{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// CreateAffectation affecte une ressource à une tâche sur une période
func (s *GormStore) CreateAffectation(a *models.RessourceAffectation) (*models.RessourceAffectation, error) {
	row := *a
	row.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var r models.Ressource
		if err := tx.First(&r, row.RessourceID).Error; err != nil {
			return asNotFound(err, "ressource", row.RessourceID)
		}
		var t models.Tache
		if err := tx.First(&t, row.TacheID).Error; err != nil {
			return asNotFound(err, "tâche", row.TacheID)
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteAffectation supprime une affectation
func (s *GormStore) DeleteAffectation(id uint) (bool, error) {
	res := s.db.Delete(&models.RessourceAffectation{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListAffectationsByRessource retourne les affectations d'une ressource
func (s *GormStore) ListAffectationsByRessource(ressourceID uint) ([]*models.RessourceAffectation, error) {
	var affectations []*models.RessourceAffectation
	if err := s.db.Where("ressource_id = ?", ressourceID).Order("id").Find(&affectations).Error; err != nil {
		return nil, err
	}
	return affectations, nil
}

// CreateDisponibilite déclare une fenêtre de disponibilité d'une ressource
func (s *GormStore) CreateDisponibilite(d *models.RessourceDisponibilite) (*models.RessourceDisponibilite, error) {
	row := *d
	row.ID = 0
	if row.Statut == "" {
		row.Statut = models.DispoDisponible
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var r models.Ressource
		if err := tx.First(&r, row.RessourceID).Error; err != nil {
			return asNotFound(err, "ressource", row.RessourceID)
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteDisponibilite supprime une disponibilité
func (s *GormStore) DeleteDisponibilite(id uint) (bool, error) {
	res := s.db.Delete(&models.RessourceDisponibilite{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListDisponibilitesByRessource retourne les disponibilités d'une ressource
func (s *GormStore) ListDisponibilitesByRessource(ressourceID uint) ([]*models.RessourceDisponibilite, error) {
	var disponibilites []*models.RessourceDisponibilite
	if err := s.db.Where("ressource_id = ?", ressourceID).Order("id").Find(&disponibilites).Error; err != nil {
		return nil, err
	}
	return disponibilites, nil
}

// GetPlanning retourne affectations et disponibilités croisant la fenêtre,
// bornes incluses, par date de début croissante, enrichies des résumés
func (s *GormStore) GetPlanning(debut, fin time.Time) (*Planning, error) {
	planning := &Planning{
		Affectations:   []*PlanningAffectation{},
		Disponibilites: []*PlanningDisponibilite{},
	}

	var affectations []models.RessourceAffectation
	if err := s.db.Where("date_debut <= ? AND date_fin >= ?", fin, debut).
		Order("date_debut, id").Find(&affectations).Error; err != nil {
		return nil, err
	}
	for i := range affectations {
		a := affectations[i]
		planning.Affectations = append(planning.Affectations, &PlanningAffectation{
			Affectation: &a,
			Ressource:   s.ressourceResume(a.RessourceID),
			Tache:       s.tacheResume(a.TacheID),
		})
	}

	var disponibilites []models.RessourceDisponibilite
	if err := s.db.Where("date_debut <= ? AND date_fin >= ?", fin, debut).
		Order("date_debut, id").Find(&disponibilites).Error; err != nil {
		return nil, err
	}
	for i := range disponibilites {
		d := disponibilites[i]
		planning.Disponibilites = append(planning.Disponibilites, &PlanningDisponibilite{
			Disponibilite: &d,
			Ressource:     s.ressourceResume(d.RessourceID),
		})
	}

	return planning, nil
}

func (s *GormStore) ressourceResume(id uint) *RessourceResume {
	var r models.Ressource
	if err := s.db.First(&r, id).Error; err != nil {
		return nil
	}
	return &RessourceResume{ID: r.ID, Nom: r.Nom, Type: r.Type}
}

func (s *GormStore) tacheResume(id uint) *TacheResume {
	var t models.Tache
	if err := s.db.First(&t, id).Error; err != nil {
		return nil
	}
	return &TacheResume{ID: t.ID, Nom: t.Nom, Statut: t.Statut}
}

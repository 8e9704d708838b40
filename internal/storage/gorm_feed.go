package storage

import (
	"chantier-go/internal/models"
)

// ListActivites retourne le journal, le plus récent d'abord.
// limit <= 0 retourne tout.
func (s *GormStore) ListActivites(limit int) ([]*models.Activite, error) {
	var activites []*models.Activite
	q := s.db.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&activites).Error; err != nil {
		return nil, err
	}
	return activites, nil
}

// ListActivitesForTarget retourne le journal d'une entité, le plus récent d'abord
func (s *GormStore) ListActivitesForTarget(targetType string, targetID uint) ([]*models.Activite, error) {
	var activites []*models.Activite
	if err := s.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("id DESC").Find(&activites).Error; err != nil {
		return nil, err
	}
	return activites, nil
}

// GetNotificationsForUser retourne la boîte d'un utilisateur, la plus récente d'abord
func (s *GormStore) GetNotificationsForUser(userID uint) ([]*models.Notification, error) {
	var notifications []*models.Notification
	if err := s.db.Where("user_id = ?", userID).Order("id DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marque une notification comme lue
func (s *GormStore) MarkNotificationRead(id uint) (*models.Notification, error) {
	var n models.Notification
	if err := s.db.First(&n, id).Error; err != nil {
		return nil, asNotFound(err, "notification", id)
	}
	n.Lu = true
	if err := s.db.Save(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkAllNotificationsRead marque toute la boîte d'un utilisateur comme lue
func (s *GormStore) MarkAllNotificationsRead(userID uint) (int, error) {
	res := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND lu = ?", userID, false).
		Update("lu", true)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// GetDashboardStats calcule les compteurs du tableau de bord à la demande
func (s *GormStore) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		EvolutionChantiers: evolutionChantiers,
		EvolutionTaches:    evolutionTaches,
		EvolutionRetards:   evolutionRetards,
		EvolutionRevisions: evolutionRevisions,
	}

	var count int64
	if err := s.db.Model(&models.Chantier{}).Where("statut = ?", models.ChantierActif).Count(&count).Error; err != nil {
		return nil, err
	}
	stats.ChantiersActifs = int(count)

	if err := s.db.Model(&models.Tache{}).Where("statut = ?", models.TacheEnCours).Count(&count).Error; err != nil {
		return nil, err
	}
	stats.TachesEnCours = int(count)

	if err := s.db.Model(&models.Tache{}).Where("statut = ?", models.TacheEnRetard).Count(&count).Error; err != nil {
		return nil, err
	}
	stats.TachesEnRetard = int(count)

	if err := s.db.Model(&models.Revision{}).Count(&count).Error; err != nil {
		return nil, err
	}
	stats.RevisionsPlans = int(count)

	return stats, nil
}

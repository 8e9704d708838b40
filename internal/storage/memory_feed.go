package storage

import (
	"sort"

	"chantier-go/internal/models"
)

// ListActivites retourne le journal, le plus récent d'abord.
// limit <= 0 retourne tout.
func (s *MemoryStore) ListActivites(limit int) ([]*models.Activite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.activites.all()
	out := make([]*models.Activite, 0, len(rows))
	for _, a := range rows {
		c := *a
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ListActivitesForTarget retourne le journal d'une entité, le plus récent d'abord
func (s *MemoryStore) ListActivitesForTarget(targetType string, targetID uint) ([]*models.Activite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.activites.filter(func(a *models.Activite) bool {
		return a.TargetType == targetType && a.TargetID == targetID
	})
	out := make([]*models.Activite, 0, len(rows))
	for _, a := range rows {
		c := *a
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// GetNotificationsForUser retourne la boîte d'un utilisateur, la plus
// récente d'abord
func (s *MemoryStore) GetNotificationsForUser(userID uint) ([]*models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.notifications.filter(func(n *models.Notification) bool { return n.UserID == userID })
	out := make([]*models.Notification, 0, len(rows))
	for _, n := range rows {
		c := *n
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// MarkNotificationRead marque une notification comme lue
func (s *MemoryStore) MarkNotificationRead(id uint) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "notification", ID: id}
	}
	n.Lu = true
	out := *n
	return &out, nil
}

// MarkAllNotificationsRead marque toute la boîte d'un utilisateur comme lue
// et retourne le nombre de notifications basculées
func (s *MemoryStore) MarkAllNotificationsRead(userID uint) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.notifications.filter(func(n *models.Notification) bool { return n.UserID == userID && !n.Lu }) {
		n.Lu = true
		count++
	}
	return count, nil
}

// GetDashboardStats calcule les compteurs du tableau de bord à la demande,
// jamais mis en cache
func (s *MemoryStore) GetDashboardStats() (*DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &DashboardStats{
		RevisionsPlans:     s.revisions.count(),
		EvolutionChantiers: evolutionChantiers,
		EvolutionTaches:    evolutionTaches,
		EvolutionRetards:   evolutionRetards,
		EvolutionRevisions: evolutionRevisions,
	}
	for _, c := range s.chantiers.all() {
		if c.Statut == models.ChantierActif {
			stats.ChantiersActifs++
		}
	}
	for _, t := range s.taches.all() {
		switch t.Statut {
		case models.TacheEnCours:
			stats.TachesEnCours++
		case models.TacheEnRetard:
			stats.TachesEnRetard++
		}
	}
	return stats, nil
}

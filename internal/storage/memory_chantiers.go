package storage

import (
	"time"

	"chantier-go/internal/models"
)

// CreateChantier insère un chantier après contrôle du responsable référencé
func (s *MemoryStore) CreateChantier(c *models.Chantier, acteurID uint) (*models.Chantier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ResponsableID != nil {
		if _, ok := s.users.get(*c.ResponsableID); !ok {
			return nil, &NotFoundError{Entite: "utilisateur", ID: *c.ResponsableID}
		}
	}

	id := s.chantiers.nextID()
	row := *c
	row.ID = id
	if row.Statut == "" {
		row.Statut = models.ChantierActif
	}
	row.CreatedAt = time.Now()
	s.chantiers.put(id, &row)

	s.dispatchLocked(evChantierCree(s.acteurNomLocked(acteurID), acteurID, &row))

	out := row
	return &out, nil
}

// GetChantier retourne un chantier par id
func (s *MemoryStore) GetChantier(id uint) (*models.Chantier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.chantiers.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "chantier", ID: id}
	}
	out := *c
	return &out, nil
}

// ListChantiers retourne tous les chantiers
func (s *MemoryStore) ListChantiers() ([]*models.Chantier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.chantiers.all()
	out := make([]*models.Chantier, 0, len(rows))
	for _, c := range rows {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// UpdateChantier fusionne les champs fournis
func (s *MemoryStore) UpdateChantier(id uint, patch ChantierPatch) (*models.Chantier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chantiers.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "chantier", ID: id}
	}

	if patch.ResponsableID != nil {
		if _, ok := s.users.get(*patch.ResponsableID); !ok {
			return nil, &NotFoundError{Entite: "utilisateur", ID: *patch.ResponsableID}
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

	out := *c
	return &out, nil
}

// DeleteChantier supprime un chantier et cascade sur ses lots puis sur les
// tâches rattachées directement au chantier
func (s *MemoryStore) DeleteChantier(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chantiers.get(id); !ok {
		return false, nil
	}

	for _, l := range s.lots.filter(func(l *models.Lot) bool { return l.ChantierID == id }) {
		s.deleteLotLocked(l.ID)
	}
	for _, t := range s.taches.filter(func(t *models.Tache) bool { return t.ChantierID == id }) {
		s.deleteTacheLocked(t.ID)
	}
	s.purgeFeedLocked(models.TargetChantier, id)

	s.chantiers.remove(id)
	return true, nil
}

// GetChantierStats compte les tâches du chantier et celles terminées
func (s *MemoryStore) GetChantierStats(id uint) (*TacheStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.chantiers.get(id); !ok {
		return nil, &NotFoundError{Entite: "chantier", ID: id}
	}

	stats := &TacheStats{}
	for _, t := range s.taches.all() {
		if t.ChantierID != id {
			continue
		}
		stats.TachesCount++
		if t.Statut == models.TacheTerminee {
			stats.TachesTermineesCount++
		}
	}
	return stats, nil
}

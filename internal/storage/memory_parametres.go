package storage

import (
	"time"

	"chantier-go/internal/models"
)

// SetParametre crée le paramètre ou met à jour sa valeur si la clé existe déjà
func (s *MemoryStore) SetParametre(cle, valeur string) (*models.Parametre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, p := range s.parametres.all() {
		if p.Cle == cle {
			p.Valeur = valeur
			p.UpdatedAt = now
			out := *p
			return &out, nil
		}
	}

	id := s.parametres.nextID()
	row := &models.Parametre{
		ID:        id,
		Cle:       cle,
		Valeur:    valeur,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.parametres.put(id, row)

	out := *row
	return &out, nil
}

// GetParametre retourne un paramètre par clé
func (s *MemoryStore) GetParametre(cle string) (*models.Parametre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.parametres.all() {
		if p.Cle == cle {
			out := *p
			return &out, nil
		}
	}
	return nil, &NotFoundError{Entite: "paramètre", ID: 0}
}

// ListParametres retourne tous les paramètres
func (s *MemoryStore) ListParametres() ([]*models.Parametre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.parametres.all()
	out := make([]*models.Parametre, 0, len(rows))
	for _, p := range rows {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

// DeleteParametre supprime un paramètre par clé
func (s *MemoryStore) DeleteParametre(cle string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.parametres.all() {
		if p.Cle == cle {
			s.parametres.remove(p.ID)
			return true, nil
		}
	}
	return false, nil
}

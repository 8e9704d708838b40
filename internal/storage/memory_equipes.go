package storage

import (
	"time"

	"chantier-go/internal/models"
)

// CreateEquipe insère une équipe après contrôle du responsable référencé
func (s *MemoryStore) CreateEquipe(e *models.Equipe) (*models.Equipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ResponsableID != nil {
		if _, ok := s.users.get(*e.ResponsableID); !ok {
			return nil, &NotFoundError{Entite: "utilisateur", ID: *e.ResponsableID}
		}
	}

	id := s.equipes.nextID()
	row := *e
	row.ID = id
	row.CreatedAt = time.Now()
	s.equipes.put(id, &row)

	out := row
	return &out, nil
}

// GetEquipe retourne une équipe par id
func (s *MemoryStore) GetEquipe(id uint) (*models.Equipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.equipes.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "équipe", ID: id}
	}
	out := *e
	return &out, nil
}

// ListEquipes retourne toutes les équipes
func (s *MemoryStore) ListEquipes() ([]*models.Equipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.equipes.all()
	out := make([]*models.Equipe, 0, len(rows))
	for _, e := range rows {
		c := *e
		out = append(out, &c)
	}
	return out, nil
}

// UpdateEquipe fusionne les champs fournis
func (s *MemoryStore) UpdateEquipe(id uint, patch EquipePatch) (*models.Equipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.equipes.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "équipe", ID: id}
	}

	if patch.ResponsableID != nil {
		if _, ok := s.users.get(*patch.ResponsableID); !ok {
			return nil, &NotFoundError{Entite: "utilisateur", ID: *patch.ResponsableID}
		}
		e.ResponsableID = patch.ResponsableID
	}
	if patch.Nom != nil {
		e.Nom = *patch.Nom
	}

	out := *e
	return &out, nil
}

// DeleteEquipe supprime une équipe et ses membres
func (s *MemoryStore) DeleteEquipe(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.equipes.get(id); !ok {
		return false, nil
	}

	for _, em := range s.equipeMembres.filter(func(em *models.EquipeMembre) bool { return em.EquipeID == id }) {
		s.equipeMembres.remove(em.ID)
	}
	s.purgeFeedLocked(models.TargetEquipe, id)

	s.equipes.remove(id)
	return true, nil
}

// AddEquipeMembre ajoute un membre à une équipe. Paire unique, doublon
// fusionné sans erreur.
func (s *MemoryStore) AddEquipeMembre(equipeID, userID uint) (*models.EquipeMembre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.equipes.get(equipeID); !ok {
		return nil, &NotFoundError{Entite: "équipe", ID: equipeID}
	}
	if _, ok := s.users.get(userID); !ok {
		return nil, &NotFoundError{Entite: "utilisateur", ID: userID}
	}

	for _, em := range s.equipeMembres.all() {
		if em.EquipeID == equipeID && em.UserID == userID {
			out := *em
			return &out, nil
		}
	}

	id := s.equipeMembres.nextID()
	row := &models.EquipeMembre{
		ID:        id,
		EquipeID:  equipeID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	s.equipeMembres.put(id, row)

	out := *row
	return &out, nil
}

// RemoveEquipeMembre retire un membre d'une équipe
func (s *MemoryStore) RemoveEquipeMembre(equipeID, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, em := range s.equipeMembres.all() {
		if em.EquipeID == equipeID && em.UserID == userID {
			s.equipeMembres.remove(em.ID)
			return true, nil
		}
	}
	return false, nil
}

// ListEquipeMembres retourne les membres d'une équipe
func (s *MemoryStore) ListEquipeMembres(equipeID uint) ([]*models.EquipeMembre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.equipeMembres.filter(func(em *models.EquipeMembre) bool { return em.EquipeID == equipeID })
	out := make([]*models.EquipeMembre, 0, len(rows))
	for _, em := range rows {
		c := *em
		out = append(out, &c)
	}
	return out, nil
}

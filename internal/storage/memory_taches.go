package storage

import (
	"time"

	"chantier-go/internal/models"
)

// CreateTache insère une tâche sous un chantier existant. Si un lot est
// donné, il doit exister et appartenir au même chantier.
func (s *MemoryStore) CreateTache(t *models.Tache, acteurID uint) (*models.Tache, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chantiers.get(t.ChantierID); !ok {
		return nil, &NotFoundError{Entite: "chantier", ID: t.ChantierID}
	}
	if t.LotID != nil {
		lot, ok := s.lots.get(*t.LotID)
		if !ok {
			return nil, &NotFoundError{Entite: "lot", ID: *t.LotID}
		}
		if lot.ChantierID != t.ChantierID {
			return nil, &ConflictError{Raison: "le lot n'appartient pas au chantier de la tâche"}
		}
	}

	id := s.taches.nextID()
	row := *t
	row.ID = id
	if row.Statut == "" {
		row.Statut = models.TacheAFaire
	}
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now
	s.taches.put(id, &row)

	s.dispatchLocked(evTacheCreee(s.acteurNomLocked(acteurID), acteurID, &row))

	out := row
	return &out, nil
}

// GetTache retourne une tâche par id
func (s *MemoryStore) GetTache(id uint) (*models.Tache, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.taches.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "tâche", ID: id}
	}
	out := *t
	return &out, nil
}

// ListTaches retourne toutes les tâches
func (s *MemoryStore) ListTaches() ([]*models.Tache, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.taches.all()
	out := make([]*models.Tache, 0, len(rows))
	for _, t := range rows {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

// ListTachesByChantier retourne les tâches d'un chantier, lots compris
func (s *MemoryStore) ListTachesByChantier(chantierID uint) ([]*models.Tache, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.taches.filter(func(t *models.Tache) bool { return t.ChantierID == chantierID })
	out := make([]*models.Tache, 0, len(rows))
	for _, t := range rows {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

// ListTachesByLot retourne les tâches d'un lot
func (s *MemoryStore) ListTachesByLot(lotID uint) ([]*models.Tache, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.taches.filter(func(t *models.Tache) bool { return t.LotID != nil && *t.LotID == lotID })
	out := make([]*models.Tache, 0, len(rows))
	for _, t := range rows {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

// UpdateTache fusionne les champs fournis. Repasser le même statut est un
// no-op : pas d'activité, pas de bump d'updated_at. Un vrai changement de
// statut journalise exactement une activité de changement de statut.
func (s *MemoryStore) UpdateTache(id uint, patch TachePatch) (*models.Tache, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.taches.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "tâche", ID: id}
	}

	changed := false
	var events []Event

	if patch.Nom != nil && *patch.Nom != t.Nom {
		t.Nom = *patch.Nom
		changed = true
	}
	if patch.Description != nil && *patch.Description != t.Description {
		t.Description = *patch.Description
		changed = true
	}
	if patch.Progression != nil && *patch.Progression != t.Progression {
		t.Progression = *patch.Progression
		changed = true
	}
	if patch.DateDebut != nil {
		t.DateDebut = patch.DateDebut
		changed = true
	}
	if patch.DateFin != nil {
		t.DateFin = patch.DateFin
		changed = true
	}
	if patch.Statut != nil && *patch.Statut != t.Statut {
		ancien := t.Statut
		t.Statut = *patch.Statut
		changed = true
		var acteurID uint
		if patch.UpdatedBy != nil {
			acteurID = *patch.UpdatedBy
		}
		events = append(events, evStatutChange(s.acteurNomLocked(acteurID), acteurID, t, ancien, *patch.Statut))
	}

	if changed {
		t.UpdatedAt = time.Now()
		if patch.UpdatedBy != nil {
			t.UpdatedBy = patch.UpdatedBy
		}
	}

	s.dispatchLocked(events...)

	out := *t
	return &out, nil
}

// DeleteTache supprime une tâche et tout ce qu'elle possède
func (s *MemoryStore) DeleteTache(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.taches.get(id); !ok {
		return false, nil
	}
	s.deleteTacheLocked(id)
	return true, nil
}

// deleteTacheLocked cascade interne : intervenants, pièces jointes et leurs
// révisions, affectations de ressources, puis activités et notifications
// ciblant la tâche
func (s *MemoryStore) deleteTacheLocked(id uint) {
	for _, ti := range s.intervenants.filter(func(ti *models.TacheIntervenant) bool { return ti.TacheID == id }) {
		s.intervenants.remove(ti.ID)
	}
	for _, pj := range s.piecesJointes.filter(func(pj *models.PieceJointe) bool { return pj.TacheID == id }) {
		s.deletePieceJointeLocked(pj.ID)
	}
	for _, a := range s.affectations.filter(func(a *models.RessourceAffectation) bool { return a.TacheID == id }) {
		s.affectations.remove(a.ID)
	}
	s.purgeFeedLocked(models.TargetTache, id)
	s.taches.remove(id)
}

// AddTacheIntervenant affecte un intervenant à une tâche. Paire unique,
// doublon fusionné sans erreur. L'affectation ne notifie personne, elle est
// seulement journalisée.
func (s *MemoryStore) AddTacheIntervenant(tacheID, userID, acteurID uint) (*models.TacheIntervenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tache, ok := s.taches.get(tacheID)
	if !ok {
		return nil, &NotFoundError{Entite: "tâche", ID: tacheID}
	}
	intervenant, ok := s.users.get(userID)
	if !ok {
		return nil, &NotFoundError{Entite: "utilisateur", ID: userID}
	}

	for _, ti := range s.intervenants.all() {
		if ti.TacheID == tacheID && ti.UserID == userID {
			out := *ti
			return &out, nil
		}
	}

	id := s.intervenants.nextID()
	row := &models.TacheIntervenant{
		ID:        id,
		TacheID:   tacheID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	s.intervenants.put(id, row)

	s.dispatchLocked(evIntervenantAjoute(s.acteurNomLocked(acteurID), acteurID, intervenant.Nom, tache))

	out := *row
	return &out, nil
}

// RemoveTacheIntervenant retire un intervenant d'une tâche
func (s *MemoryStore) RemoveTacheIntervenant(tacheID, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ti := range s.intervenants.all() {
		if ti.TacheID == tacheID && ti.UserID == userID {
			s.intervenants.remove(ti.ID)
			return true, nil
		}
	}
	return false, nil
}

// ListTacheIntervenants retourne les intervenants d'une tâche
func (s *MemoryStore) ListTacheIntervenants(tacheID uint) ([]*models.TacheIntervenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.intervenants.filter(func(ti *models.TacheIntervenant) bool { return ti.TacheID == tacheID })
	out := make([]*models.TacheIntervenant, 0, len(rows))
	for _, ti := range rows {
		c := *ti
		out = append(out, &c)
	}
	return out, nil
}

// destinatairesLocked intervenants d'une tâche à notifier, acteur exclu
func (s *MemoryStore) destinatairesLocked(tacheID, acteurID uint) []uint {
	var out []uint
	for _, ti := range s.intervenants.filter(func(ti *models.TacheIntervenant) bool { return ti.TacheID == tacheID }) {
		if ti.UserID != acteurID {
			out = append(out, ti.UserID)
		}
	}
	return out
}

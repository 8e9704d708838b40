package storage

import (
	"sort"
	"time"

	"chantier-go/internal/models"
)

// CreateRessource insère une ressource
func (s *MemoryStore) CreateRessource(r *models.Ressource) (*models.Ressource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ressources.nextID()
	row := *r
	row.ID = id
	row.CreatedAt = time.Now()
	s.ressources.put(id, &row)

	out := row
	return &out, nil
}

// GetRessource retourne une ressource par id
func (s *MemoryStore) GetRessource(id uint) (*models.Ressource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.ressources.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "ressource", ID: id}
	}
	out := *r
	return &out, nil
}

// ListRessources retourne toutes les ressources
func (s *MemoryStore) ListRessources() ([]*models.Ressource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.ressources.all()
	out := make([]*models.Ressource, 0, len(rows))
	for _, r := range rows {
		c := *r
		out = append(out, &c)
	}
	return out, nil
}

// UpdateRessource fusionne les champs fournis
func (s *MemoryStore) UpdateRessource(id uint, patch RessourcePatch) (*models.Ressource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.ressources.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "ressource", ID: id}
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

	out := *r
	return &out, nil
}

// DeleteRessource supprime une ressource, ses affectations et ses
// disponibilités
func (s *MemoryStore) DeleteRessource(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ressources.get(id); !ok {
		return false, nil
	}

	for _, a := range s.affectations.filter(func(a *models.RessourceAffectation) bool { return a.RessourceID == id }) {
		s.affectations.remove(a.ID)
	}
	for _, d := range s.disponibilites.filter(func(d *models.RessourceDisponibilite) bool { return d.RessourceID == id }) {
		s.disponibilites.remove(d.ID)
	}
	s.purgeFeedLocked(models.TargetRessource, id)

	s.ressources.remove(id)
	return true, nil
}

// CreateAffectation affecte une ressource à une tâche sur une période
func (s *MemoryStore) CreateAffectation(a *models.RessourceAffectation) (*models.RessourceAffectation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ressources.get(a.RessourceID); !ok {
		return nil, &NotFoundError{Entite: "ressource", ID: a.RessourceID}
	}
	if _, ok := s.taches.get(a.TacheID); !ok {
		return nil, &NotFoundError{Entite: "tâche", ID: a.TacheID}
	}

	id := s.affectations.nextID()
	row := *a
	row.ID = id
	row.CreatedAt = time.Now()
	s.affectations.put(id, &row)

	out := row
	return &out, nil
}

// DeleteAffectation supprime une affectation
func (s *MemoryStore) DeleteAffectation(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.affectations.remove(id), nil
}

// ListAffectationsByRessource retourne les affectations d'une ressource
func (s *MemoryStore) ListAffectationsByRessource(ressourceID uint) ([]*models.RessourceAffectation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.affectations.filter(func(a *models.RessourceAffectation) bool { return a.RessourceID == ressourceID })
	out := make([]*models.RessourceAffectation, 0, len(rows))
	for _, a := range rows {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

// CreateDisponibilite déclare une fenêtre de disponibilité d'une ressource
func (s *MemoryStore) CreateDisponibilite(d *models.RessourceDisponibilite) (*models.RessourceDisponibilite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ressources.get(d.RessourceID); !ok {
		return nil, &NotFoundError{Entite: "ressource", ID: d.RessourceID}
	}

	id := s.disponibilites.nextID()
	row := *d
	row.ID = id
	if row.Statut == "" {
		row.Statut = models.DispoDisponible
	}
	row.CreatedAt = time.Now()
	s.disponibilites.put(id, &row)

	out := row
	return &out, nil
}

// DeleteDisponibilite supprime une disponibilité
func (s *MemoryStore) DeleteDisponibilite(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.disponibilites.remove(id), nil
}

// ListDisponibilitesByRessource retourne les disponibilités d'une ressource
func (s *MemoryStore) ListDisponibilitesByRessource(ressourceID uint) ([]*models.RessourceDisponibilite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.disponibilites.filter(func(d *models.RessourceDisponibilite) bool { return d.RessourceID == ressourceID })
	out := make([]*models.RessourceDisponibilite, 0, len(rows))
	for _, d := range rows {
		c := *d
		out = append(out, &c)
	}
	return out, nil
}

// GetPlanning retourne affectations et disponibilités dont la période croise
// la fenêtre demandée, bornes incluses, triées par date de début croissante
// et enrichies du résumé de leur ressource et tâche
func (s *MemoryStore) GetPlanning(debut, fin time.Time) (*Planning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	planning := &Planning{
		Affectations:   []*PlanningAffectation{},
		Disponibilites: []*PlanningDisponibilite{},
	}

	for _, a := range s.affectations.all() {
		if !chevauche(a.DateDebut, a.DateFin, debut, fin) {
			continue
		}
		c := *a
		planning.Affectations = append(planning.Affectations, &PlanningAffectation{
			Affectation: &c,
			Ressource:   s.ressourceResumeLocked(a.RessourceID),
			Tache:       s.tacheResumeLocked(a.TacheID),
		})
	}
	sort.SliceStable(planning.Affectations, func(i, j int) bool {
		return planning.Affectations[i].Affectation.DateDebut.Before(planning.Affectations[j].Affectation.DateDebut)
	})

	for _, d := range s.disponibilites.all() {
		if !chevauche(d.DateDebut, d.DateFin, debut, fin) {
			continue
		}
		c := *d
		planning.Disponibilites = append(planning.Disponibilites, &PlanningDisponibilite{
			Disponibilite: &c,
			Ressource:     s.ressourceResumeLocked(d.RessourceID),
		})
	}
	sort.SliceStable(planning.Disponibilites, func(i, j int) bool {
		return planning.Disponibilites[i].Disponibilite.DateDebut.Before(planning.Disponibilites[j].Disponibilite.DateDebut)
	})

	return planning, nil
}

func (s *MemoryStore) ressourceResumeLocked(id uint) *RessourceResume {
	r, ok := s.ressources.get(id)
	if !ok {
		return nil
	}
	return &RessourceResume{ID: r.ID, Nom: r.Nom, Type: r.Type}
}

func (s *MemoryStore) tacheResumeLocked(id uint) *TacheResume {
	t, ok := s.taches.get(id)
	if !ok {
		return nil
	}
	return &TacheResume{ID: t.ID, Nom: t.Nom, Statut: t.Statut}
}

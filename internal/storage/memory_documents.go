package storage

import (
	"sort"
	"time"

	"chantier-go/internal/models"
)

// CreatePieceJointe attache un document à une tâche existante. Chaque
// intervenant de la tâche autre que l'acteur reçoit une notification.
func (s *MemoryStore) CreatePieceJointe(pj *models.PieceJointe, acteurID uint) (*models.PieceJointe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tache, ok := s.taches.get(pj.TacheID)
	if !ok {
		return nil, &NotFoundError{Entite: "tâche", ID: pj.TacheID}
	}

	id := s.piecesJointes.nextID()
	row := *pj
	row.ID = id
	row.CreatedAt = time.Now()
	s.piecesJointes.put(id, &row)

	dest := s.destinatairesLocked(tache.ID, acteurID)
	s.dispatchLocked(evDocumentAjoute(s.acteurNomLocked(acteurID), acteurID, &row, tache, dest))

	out := row
	return &out, nil
}

// GetPieceJointe retourne une pièce jointe par id
func (s *MemoryStore) GetPieceJointe(id uint) (*models.PieceJointe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pj, ok := s.piecesJointes.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "pièce jointe", ID: id}
	}
	out := *pj
	return &out, nil
}

// ListPiecesJointesByTache retourne les documents d'une tâche
func (s *MemoryStore) ListPiecesJointesByTache(tacheID uint) ([]*models.PieceJointe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.piecesJointes.filter(func(pj *models.PieceJointe) bool { return pj.TacheID == tacheID })
	out := make([]*models.PieceJointe, 0, len(rows))
	for _, pj := range rows {
		c := *pj
		out = append(out, &c)
	}
	return out, nil
}

// DeletePieceJointe supprime un document et ses révisions
func (s *MemoryStore) DeletePieceJointe(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.piecesJointes.get(id); !ok {
		return false, nil
	}
	s.deletePieceJointeLocked(id)
	return true, nil
}

// deletePieceJointeLocked cascade interne, verrou déjà pris
func (s *MemoryStore) deletePieceJointeLocked(id uint) {
	for _, r := range s.revisions.filter(func(r *models.Revision) bool { return r.PieceJointeID == id }) {
		s.revisions.remove(r.ID)
	}
	s.piecesJointes.remove(id)
}

// CreateRevision crée une révision sous une pièce jointe existante et force
// la tâche parente en en_revision si elle n'y est pas déjà. La transition
// forcée journalise la même activité de changement de statut que la voie
// explicite, une seule fois.
func (s *MemoryStore) CreateRevision(r *models.Revision, acteurID uint) (*models.Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pj, ok := s.piecesJointes.get(r.PieceJointeID)
	if !ok {
		return nil, &NotFoundError{Entite: "pièce jointe", ID: r.PieceJointeID}
	}
	tache, ok := s.taches.get(pj.TacheID)
	if !ok {
		return nil, &NotFoundError{Entite: "tâche", ID: pj.TacheID}
	}

	id := s.revisions.nextID()
	row := *r
	row.ID = id
	row.CreatedAt = time.Now()
	s.revisions.put(id, &row)

	acteurNom := s.acteurNomLocked(acteurID)
	dest := s.destinatairesLocked(tache.ID, acteurID)
	events := []Event{evRevisionCreee(acteurNom, acteurID, &row, pj, tache, dest)}

	if tache.Statut != models.TacheEnRevision {
		ancien := tache.Statut
		tache.Statut = models.TacheEnRevision
		tache.UpdatedAt = time.Now()
		if acteurID != 0 {
			tache.UpdatedBy = acteurRef(acteurID)
		}
		events = append(events, evStatutChange(acteurNom, acteurID, tache, ancien, models.TacheEnRevision))
	}

	s.dispatchLocked(events...)

	out := row
	return &out, nil
}

// ListRevisionsByPieceJointe retourne les révisions d'un document, la plus
// récente d'abord
func (s *MemoryStore) ListRevisionsByPieceJointe(pieceJointeID uint) ([]*models.Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.revisions.filter(func(r *models.Revision) bool { return r.PieceJointeID == pieceJointeID })
	out := make([]*models.Revision, 0, len(rows))
	for _, r := range rows {
		c := *r
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

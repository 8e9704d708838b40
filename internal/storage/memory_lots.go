package storage

import (
	"time"

	"chantier-go/internal/models"
)

// CreateLot insère un lot sous un chantier existant.
// L'activité est journalisée au niveau du chantier.
func (s *MemoryStore) CreateLot(l *models.Lot, acteurID uint) (*models.Lot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chantier, ok := s.chantiers.get(l.ChantierID)
	if !ok {
		return nil, &NotFoundError{Entite: "chantier", ID: l.ChantierID}
	}

	id := s.lots.nextID()
	row := *l
	row.ID = id
	row.CreatedAt = time.Now()
	s.lots.put(id, &row)

	s.dispatchLocked(evLotCree(s.acteurNomLocked(acteurID), acteurID, &row, chantier.Nom))

	out := row
	return &out, nil
}

// GetLot retourne un lot par id
func (s *MemoryStore) GetLot(id uint) (*models.Lot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lots.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "lot", ID: id}
	}
	out := *l
	return &out, nil
}

// ListLotsByChantier retourne les lots d'un chantier
func (s *MemoryStore) ListLotsByChantier(chantierID uint) ([]*models.Lot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.lots.filter(func(l *models.Lot) bool { return l.ChantierID == chantierID })
	out := make([]*models.Lot, 0, len(rows))
	for _, l := range rows {
		c := *l
		out = append(out, &c)
	}
	return out, nil
}

// UpdateLot fusionne les champs fournis
func (s *MemoryStore) UpdateLot(id uint, patch LotPatch) (*models.Lot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lots.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "lot", ID: id}
	}

	if patch.Nom != nil {
		l.Nom = *patch.Nom
	}
	if patch.Numero != nil {
		l.Numero = *patch.Numero
	}

	out := *l
	return &out, nil
}

// DeleteLot supprime un lot, ses pilotes et ses tâches
func (s *MemoryStore) DeleteLot(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lots.get(id); !ok {
		return false, nil
	}
	s.deleteLotLocked(id)
	return true, nil
}

// deleteLotLocked cascade interne, verrou déjà pris
func (s *MemoryStore) deleteLotLocked(id uint) {
	for _, lp := range s.lotPilotes.filter(func(lp *models.LotPilote) bool { return lp.LotID == id }) {
		s.lotPilotes.remove(lp.ID)
	}
	for _, t := range s.taches.filter(func(t *models.Tache) bool { return t.LotID != nil && *t.LotID == id }) {
		s.deleteTacheLocked(t.ID)
	}
	s.purgeFeedLocked(models.TargetLot, id)
	s.lots.remove(id)
}

// GetLotStats compte les tâches du lot et celles terminées
func (s *MemoryStore) GetLotStats(id uint) (*TacheStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.lots.get(id); !ok {
		return nil, &NotFoundError{Entite: "lot", ID: id}
	}

	stats := &TacheStats{}
	for _, t := range s.taches.all() {
		if t.LotID == nil || *t.LotID != id {
			continue
		}
		stats.TachesCount++
		if t.Statut == models.TacheTerminee {
			stats.TachesTermineesCount++
		}
	}
	return stats, nil
}

// AddLotPilote affecte un pilote à un lot. La paire (lot, user) est unique :
// une affectation déjà présente est fusionnée sans erreur et sans nouvelle
// activité.
func (s *MemoryStore) AddLotPilote(lotID, userID uint, role string, acteurID uint) (*models.LotPilote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lot, ok := s.lots.get(lotID)
	if !ok {
		return nil, &NotFoundError{Entite: "lot", ID: lotID}
	}
	pilote, ok := s.users.get(userID)
	if !ok {
		return nil, &NotFoundError{Entite: "utilisateur", ID: userID}
	}

	for _, lp := range s.lotPilotes.all() {
		if lp.LotID == lotID && lp.UserID == userID {
			if role != "" {
				lp.Role = role
			}
			out := *lp
			return &out, nil
		}
	}

	id := s.lotPilotes.nextID()
	row := &models.LotPilote{
		ID:        id,
		LotID:     lotID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	}
	s.lotPilotes.put(id, row)

	s.dispatchLocked(evPiloteAjoute(s.acteurNomLocked(acteurID), acteurID, pilote.Nom, lot))

	out := *row
	return &out, nil
}

// RemoveLotPilote retire un pilote d'un lot
func (s *MemoryStore) RemoveLotPilote(lotID, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lp := range s.lotPilotes.all() {
		if lp.LotID == lotID && lp.UserID == userID {
			s.lotPilotes.remove(lp.ID)
			return true, nil
		}
	}
	return false, nil
}

// ListLotPilotes retourne les pilotes d'un lot
func (s *MemoryStore) ListLotPilotes(lotID uint) ([]*models.LotPilote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.lotPilotes.filter(func(lp *models.LotPilote) bool { return lp.LotID == lotID })
	out := make([]*models.LotPilote, 0, len(rows))
	for _, lp := range rows {
		c := *lp
		out = append(out, &c)
	}
	return out, nil
}

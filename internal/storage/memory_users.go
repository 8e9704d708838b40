package storage

import (
	"time"

	"chantier-go/internal/models"
)

// CreateUser insère un utilisateur, username unique
func (s *MemoryStore) CreateUser(u *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existant := range s.users.all() {
		if existant.Username == u.Username {
			return nil, &ConflictError{Raison: "ce nom d'utilisateur est déjà pris"}
		}
	}

	id := s.users.nextID()
	row := *u
	row.ID = id
	row.CreatedAt = time.Now()
	s.users.put(id, &row)

	out := row
	return &out, nil
}

// GetUser retourne un utilisateur par id
func (s *MemoryStore) GetUser(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "utilisateur", ID: id}
	}
	out := *u
	return &out, nil
}

// GetUserByUsername retourne un utilisateur par identifiant de connexion
func (s *MemoryStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users.all() {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, &NotFoundError{Entite: "utilisateur", ID: 0}
}

// ListUsers retourne tous les utilisateurs
func (s *MemoryStore) ListUsers() ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.users.all()
	out := make([]*models.User, 0, len(rows))
	for _, u := range rows {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

// UpdateUser fusionne les champs fournis, les champs absents sont conservés
func (s *MemoryStore) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, &NotFoundError{Entite: "utilisateur", ID: id}
	}

	if patch.Nom != nil {
		u.Nom = *patch.Nom
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}

	out := *u
	return &out, nil
}

// DeleteUser supprime un utilisateur. Refusé pour un compte directeur.
// Les lignes de jointure qui le nomment sont détachées, les références
// optionnelles (responsable de chantier, updated_by) restent tolérées.
func (s *MemoryStore) DeleteUser(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return false, nil
	}
	if u.Role == models.RoleDirecteur {
		return false, &ForbiddenError{Raison: "le compte directeur ne peut pas être supprimé"}
	}

	for _, lp := range s.lotPilotes.filter(func(lp *models.LotPilote) bool { return lp.UserID == id }) {
		s.lotPilotes.remove(lp.ID)
	}
	for _, ti := range s.intervenants.filter(func(ti *models.TacheIntervenant) bool { return ti.UserID == id }) {
		s.intervenants.remove(ti.ID)
	}
	for _, em := range s.equipeMembres.filter(func(em *models.EquipeMembre) bool { return em.UserID == id }) {
		s.equipeMembres.remove(em.ID)
	}

	s.users.remove(id)
	return true, nil
}

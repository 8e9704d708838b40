package storage

import (
	"sync"
	"time"

	"chantier-go/internal/models"
)

// MemoryStore implémentation mémoire de Store. Un RWMutex global garantit
// qu'aucun lecteur n'observe une cascade partielle : chaque mutation publique
// prend le verrou en écriture, les lectures le prennent en lecture.
type MemoryStore struct {
	mu sync.RWMutex

	users            *table[models.User]
	chantiers        *table[models.Chantier]
	lots             *table[models.Lot]
	lotPilotes       *table[models.LotPilote]
	taches           *table[models.Tache]
	intervenants     *table[models.TacheIntervenant]
	piecesJointes    *table[models.PieceJointe]
	revisions        *table[models.Revision]
	ressources       *table[models.Ressource]
	affectations     *table[models.RessourceAffectation]
	disponibilites   *table[models.RessourceDisponibilite]
	equipes          *table[models.Equipe]
	equipeMembres    *table[models.EquipeMembre]
	parametres       *table[models.Parametre]
	activites        *table[models.Activite]
	notifications    *table[models.Notification]
}

// NewMemoryStore construit un store vide. Le chargement des données de
// démonstration est un appel explicite à Seed, jamais un effet de bord.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:          newTable[models.User](),
		chantiers:      newTable[models.Chantier](),
		lots:           newTable[models.Lot](),
		lotPilotes:     newTable[models.LotPilote](),
		taches:         newTable[models.Tache](),
		intervenants:   newTable[models.TacheIntervenant](),
		piecesJointes:  newTable[models.PieceJointe](),
		revisions:      newTable[models.Revision](),
		ressources:     newTable[models.Ressource](),
		affectations:   newTable[models.RessourceAffectation](),
		disponibilites: newTable[models.RessourceDisponibilite](),
		equipes:        newTable[models.Equipe](),
		equipeMembres:  newTable[models.EquipeMembre](),
		parametres:     newTable[models.Parametre](),
		activites:      newTable[models.Activite](),
		notifications:  newTable[models.Notification](),
	}
}

var _ Store = (*MemoryStore)(nil)

// acteurNomLocked résout le nom d'un acteur, verrou déjà pris.
// Une référence qui ne résout plus est tolérée et affichée comme inconnue.
func (s *MemoryStore) acteurNomLocked(id uint) string {
	if id == 0 {
		return acteurInconnu
	}
	if u, ok := s.users.get(id); ok {
		return u.Nom
	}
	return acteurInconnu
}

// dispatchLocked traduit les événements en lignes Activite et Notification,
// dans la même section critique que la mutation qui les a produits
func (s *MemoryStore) dispatchLocked(events ...Event) {
	now := time.Now()
	for _, ev := range events {
		id := s.activites.nextID()
		s.activites.put(id, &models.Activite{
			ID:          id,
			Type:        ev.Type,
			Description: ev.Description,
			ActeurID:    ev.ActeurID,
			TargetID:    ev.TargetID,
			TargetType:  ev.TargetType,
			Metadata:    ev.Metadata,
			CreatedAt:   now,
		})
		for _, userID := range ev.Notifier {
			nid := s.notifications.nextID()
			s.notifications.put(nid, &models.Notification{
				ID:         nid,
				UserID:     userID,
				Message:    ev.Message,
				Lu:         false,
				TargetID:   ev.TargetID,
				TargetType: ev.TargetType,
				CreatedAt:  now,
			})
		}
	}
}

// purgeFeedLocked supprime activités et notifications ciblant une entité
// supprimée, retombées de cascade
func (s *MemoryStore) purgeFeedLocked(targetType string, targetID uint) {
	for _, a := range s.activites.filter(func(a *models.Activite) bool {
		return a.TargetType == targetType && a.TargetID == targetID
	}) {
		s.activites.remove(a.ID)
	}
	for _, n := range s.notifications.filter(func(n *models.Notification) bool {
		return n.TargetType == targetType && n.TargetID == targetID
	}) {
		s.notifications.remove(n.ID)
	}
}

package storage

import (
	"time"

	"chantier-go/internal/models"
)

// Store façade unique du magasin d'entités. Toute mutation est atomique pour
// les lecteurs concurrents : aucune lecture ne peut observer une cascade
// partielle. Les deux implémentations (mémoire et gorm) sont prouvées
// équivalentes par la suite de tests de contrat.
type Store interface {
	// Utilisateurs
	CreateUser(u *models.User) (*models.User, error)
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	ListUsers() ([]*models.User, error)
	UpdateUser(id uint, patch UserPatch) (*models.User, error)
	DeleteUser(id uint) (bool, error)

	// Chantiers
	CreateChantier(c *models.Chantier, acteurID uint) (*models.Chantier, error)
	GetChantier(id uint) (*models.Chantier, error)
	ListChantiers() ([]*models.Chantier, error)
	UpdateChantier(id uint, patch ChantierPatch) (*models.Chantier, error)
	DeleteChantier(id uint) (bool, error)
	GetChantierStats(id uint) (*TacheStats, error)

	// Lots
	CreateLot(l *models.Lot, acteurID uint) (*models.Lot, error)
	GetLot(id uint) (*models.Lot, error)
	ListLotsByChantier(chantierID uint) ([]*models.Lot, error)
	UpdateLot(id uint, patch LotPatch) (*models.Lot, error)
	DeleteLot(id uint) (bool, error)
	GetLotStats(id uint) (*TacheStats, error)
	AddLotPilote(lotID, userID uint, role string, acteurID uint) (*models.LotPilote, error)
	RemoveLotPilote(lotID, userID uint) (bool, error)
	ListLotPilotes(lotID uint) ([]*models.LotPilote, error)

	// Tâches
	CreateTache(t *models.Tache, acteurID uint) (*models.Tache, error)
	GetTache(id uint) (*models.Tache, error)
	ListTaches() ([]*models.Tache, error)
	ListTachesByChantier(chantierID uint) ([]*models.Tache, error)
	ListTachesByLot(lotID uint) ([]*models.Tache, error)
	UpdateTache(id uint, patch TachePatch) (*models.Tache, error)
	DeleteTache(id uint) (bool, error)
	AddTacheIntervenant(tacheID, userID, acteurID uint) (*models.TacheIntervenant, error)
	RemoveTacheIntervenant(tacheID, userID uint) (bool, error)
	ListTacheIntervenants(tacheID uint) ([]*models.TacheIntervenant, error)

	// Pièces jointes et révisions
	CreatePieceJointe(pj *models.PieceJointe, acteurID uint) (*models.PieceJointe, error)
	GetPieceJointe(id uint) (*models.PieceJointe, error)
	ListPiecesJointesByTache(tacheID uint) ([]*models.PieceJointe, error)
	DeletePieceJointe(id uint) (bool, error)
	CreateRevision(r *models.Revision, acteurID uint) (*models.Revision, error)
	ListRevisionsByPieceJointe(pieceJointeID uint) ([]*models.Revision, error)

	// Ressources, affectations, disponibilités
	CreateRessource(r *models.Ressource) (*models.Ressource, error)
	GetRessource(id uint) (*models.Ressource, error)
	ListRessources() ([]*models.Ressource, error)
	UpdateRessource(id uint, patch RessourcePatch) (*models.Ressource, error)
	DeleteRessource(id uint) (bool, error)
	CreateAffectation(a *models.RessourceAffectation) (*models.RessourceAffectation, error)
	DeleteAffectation(id uint) (bool, error)
	ListAffectationsByRessource(ressourceID uint) ([]*models.RessourceAffectation, error)
	CreateDisponibilite(d *models.RessourceDisponibilite) (*models.RessourceDisponibilite, error)
	DeleteDisponibilite(id uint) (bool, error)
	ListDisponibilitesByRessource(ressourceID uint) ([]*models.RessourceDisponibilite, error)
	GetPlanning(debut, fin time.Time) (*Planning, error)

	// Équipes
	CreateEquipe(e *models.Equipe) (*models.Equipe, error)
	GetEquipe(id uint) (*models.Equipe, error)
	ListEquipes() ([]*models.Equipe, error)
	UpdateEquipe(id uint, patch EquipePatch) (*models.Equipe, error)
	DeleteEquipe(id uint) (bool, error)
	AddEquipeMembre(equipeID, userID uint) (*models.EquipeMembre, error)
	RemoveEquipeMembre(equipeID, userID uint) (bool, error)
	ListEquipeMembres(equipeID uint) ([]*models.EquipeMembre, error)

	// Paramètres
	SetParametre(cle, valeur string) (*models.Parametre, error)
	GetParametre(cle string) (*models.Parametre, error)
	ListParametres() ([]*models.Parametre, error)
	DeleteParametre(cle string) (bool, error)

	// Journal d'activité et notifications
	ListActivites(limit int) ([]*models.Activite, error)
	ListActivitesForTarget(targetType string, targetID uint) ([]*models.Activite, error)
	GetNotificationsForUser(userID uint) ([]*models.Notification, error)
	MarkNotificationRead(id uint) (*models.Notification, error)
	MarkAllNotificationsRead(userID uint) (int, error)

	// Tableau de bord
	GetDashboardStats() (*DashboardStats, error)
}

// UserPatch champs modifiables d'un utilisateur, nil = inchangé
type UserPatch struct {
	Nom          *string
	Role         *string
	Email        *string
	Username     *string
	PasswordHash *string
}

// ChantierPatch champs modifiables d'un chantier
type ChantierPatch struct {
	Nom           *string
	Adresse       *string
	Statut        *string
	Description   *string
	DateDebut     *time.Time
	DateFin       *time.Time
	ResponsableID *uint
}

// LotPatch champs modifiables d'un lot
type LotPatch struct {
	Nom    *string
	Numero *string
}

// TachePatch champs modifiables d'une tâche. UpdatedBy identifie l'acteur
// du changement, il est journalisé sur un changement de statut.
type TachePatch struct {
	Nom         *string
	Description *string
	Statut      *string
	Progression *int
	DateDebut   *time.Time
	DateFin     *time.Time
	UpdatedBy   *uint
}

// RessourcePatch champs modifiables d'une ressource
type RessourcePatch struct {
	Nom            *string
	Type           *string
	Unite          *string
	CoutJournalier *float64
}

// EquipePatch champs modifiables d'une équipe
type EquipePatch struct {
	Nom           *string
	ResponsableID *uint
}

// DashboardStats compteurs du tableau de bord. Les pourcentages d'évolution
// sont des constantes d'affichage, pas des statistiques calculées.
type DashboardStats struct {
	ChantiersActifs    int `json:"chantiersActifs"`
	TachesEnCours      int `json:"tachesEnCours"`
	TachesEnRetard     int `json:"tachesEnRetard"`
	RevisionsPlans     int `json:"revisionsPlans"`
	EvolutionChantiers int `json:"evolutionChantiers"`
	EvolutionTaches    int `json:"evolutionTaches"`
	EvolutionRetards   int `json:"evolutionRetards"`
	EvolutionRevisions int `json:"evolutionRevisions"`
}

// Pourcentages d'évolution affichés sur le tableau de bord
const (
	evolutionChantiers = 12
	evolutionTaches    = 8
	evolutionRetards   = -3
	evolutionRevisions = 15
)

// TacheStats compteurs de tâches d'un lot ou d'un chantier
type TacheStats struct {
	TachesCount          int `json:"tachesCount"`
	TachesTermineesCount int `json:"tachesTermineesCount"`
}

// RessourceResume résumé d'une ressource pour le planning
type RessourceResume struct {
	ID   uint   `json:"id"`
	Nom  string `json:"nom"`
	Type string `json:"type"`
}

// TacheResume résumé d'une tâche pour le planning
type TacheResume struct {
	ID     uint   `json:"id"`
	Nom    string `json:"nom"`
	Statut string `json:"statut"`
}

// PlanningAffectation affectation enrichie de sa ressource et de sa tâche
type PlanningAffectation struct {
	Affectation *models.RessourceAffectation `json:"affectation"`
	Ressource   *RessourceResume             `json:"ressource"`
	Tache       *TacheResume                 `json:"tache"`
}

// PlanningDisponibilite disponibilité enrichie de sa ressource
type PlanningDisponibilite struct {
	Disponibilite *models.RessourceDisponibilite `json:"disponibilite"`
	Ressource     *RessourceResume               `json:"ressource"`
}

// Planning affectations et disponibilités croisant la fenêtre demandée,
// triées par date de début croissante
type Planning struct {
	Affectations   []*PlanningAffectation   `json:"affectations"`
	Disponibilites []*PlanningDisponibilite `json:"disponibilites"`
}

// chevauche teste l'intersection inclusive de [debut,fin] avec la fenêtre demandée
func chevauche(debut, fin, fenDebut, fenFin time.Time) bool {
	return !debut.After(fenFin) && !fin.Before(fenDebut)
}

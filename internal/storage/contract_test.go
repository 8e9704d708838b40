package storage

import (
	"path/filepath"
	"testing"
	"time"

	"chantier-go/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// La même suite de contrat s'exécute contre les deux backends pour prouver
// leur équivalence.

func TestMemoryStoreContract(t *testing.T) {
	runContract(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestGormStoreContract(t *testing.T) {
	runContract(t, func(t *testing.T) Store {
		path := filepath.Join(t.TempDir(), "contract.db")
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
			DisableForeignKeyConstraintWhenMigrating: true,
		})
		require.NoError(t, err)
		require.NoError(t, models.AutoMigrate(db))
		return NewGormStore(db)
	})
}

func creerUtilisateur(t *testing.T, s Store, nom, role string) *models.User {
	t.Helper()
	u, err := s.CreateUser(&models.User{Nom: nom, Role: role, Username: nom})
	require.NoError(t, err)
	return u
}

func creerChantier(t *testing.T, s Store, acteurID uint) *models.Chantier {
	t.Helper()
	c, err := s.CreateChantier(&models.Chantier{Nom: "Chantier test"}, acteurID)
	require.NoError(t, err)
	return c
}

func activitesStatut(t *testing.T, s Store, tacheID uint) []*models.Activite {
	t.Helper()
	all, err := s.ListActivitesForTarget(models.TargetTache, tacheID)
	require.NoError(t, err)
	var out []*models.Activite
	for _, a := range all {
		if a.Type == models.ActiviteChangementStatut {
			out = append(out, a)
		}
	}
	return out
}

func runContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("CreateAvecCleEtrangereAbsente", func(t *testing.T) {
		s := newStore(t)

		_, err := s.CreateLot(&models.Lot{ChantierID: 99, Nom: "Lot"}, 0)
		require.True(t, IsNotFound(err))

		_, err = s.CreateTache(&models.Tache{ChantierID: 99, Nom: "T"}, 0)
		require.True(t, IsNotFound(err))

		_, err = s.CreateRevision(&models.Revision{PieceJointeID: 99, Indice: "A"}, 0)
		require.True(t, IsNotFound(err))

		_, err = s.CreateChantier(&models.Chantier{Nom: "C", ResponsableID: ptr(uint(99))}, 0)
		require.True(t, IsNotFound(err))
	})

	t.Run("UsernameUnique", func(t *testing.T) {
		s := newStore(t)
		creerUtilisateur(t, s, "alice", models.RoleConducteur)

		_, err := s.CreateUser(&models.User{Nom: "Autre", Role: models.RoleIntervenant, Username: "alice"})
		require.True(t, IsConflict(err))
	})

	t.Run("TacheLotChantierIncoherent", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c1 := creerChantier(t, s, u.ID)
		c2 := creerChantier(t, s, u.ID)
		lot, err := s.CreateLot(&models.Lot{ChantierID: c1.ID, Nom: "Lot"}, u.ID)
		require.NoError(t, err)

		_, err = s.CreateTache(&models.Tache{ChantierID: c2.ID, LotID: &lot.ID, Nom: "T"}, u.ID)
		require.True(t, IsConflict(err))
	})

	t.Run("UpdatePartielNeResetPas", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		tache, err := s.CreateTache(&models.Tache{
			ChantierID: c.ID, Nom: "Fondations", Description: "Semelles", Progression: 10,
		}, u.ID)
		require.NoError(t, err)

		maj, err := s.UpdateTache(tache.ID, TachePatch{Progression: ptr(50)})
		require.NoError(t, err)
		require.Equal(t, "Fondations", maj.Nom)
		require.Equal(t, "Semelles", maj.Description)
		require.Equal(t, 50, maj.Progression)
	})

	t.Run("UpdateIdAbsent", func(t *testing.T) {
		s := newStore(t)
		_, err := s.UpdateTache(99, TachePatch{Progression: ptr(10)})
		require.True(t, IsNotFound(err))
	})

	t.Run("DeleteIdAbsentRendFalse", func(t *testing.T) {
		s := newStore(t)
		ok, err := s.DeleteChantier(99)
		require.NoError(t, err)
		require.False(t, ok)
		ok, err = s.DeleteTache(99)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("StatutIdentiqueNoOp", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		tache, err := s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T", Statut: models.TacheEnCours}, u.ID)
		require.NoError(t, err)
		avant := len(activitesStatut(t, s, tache.ID))

		maj, err := s.UpdateTache(tache.ID, TachePatch{Statut: ptr(models.TacheEnCours), UpdatedBy: &u.ID})
		require.NoError(t, err)
		require.True(t, tache.UpdatedAt.Equal(maj.UpdatedAt), "updated_at ne doit pas bouger sur un no-op")
		require.Len(t, activitesStatut(t, s, tache.ID), avant)
	})

	t.Run("ChangementStatutJournalise", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		tache, err := s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T"}, u.ID)
		require.NoError(t, err)

		maj, err := s.UpdateTache(tache.ID, TachePatch{Statut: ptr(models.TacheEnCours), UpdatedBy: &u.ID})
		require.NoError(t, err)
		require.Equal(t, models.TacheEnCours, maj.Statut)
		require.NotNil(t, maj.UpdatedBy)
		require.Equal(t, u.ID, *maj.UpdatedBy)
		require.Len(t, activitesStatut(t, s, tache.ID), 1)
	})

	t.Run("RevisionForceEnRevision", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		tache, err := s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T", Statut: models.TacheEnCours}, u.ID)
		require.NoError(t, err)
		pj, err := s.CreatePieceJointe(&models.PieceJointe{TacheID: tache.ID, Nom: "plan.pdf"}, u.ID)
		require.NoError(t, err)

		_, err = s.CreateRevision(&models.Revision{PieceJointeID: pj.ID, Indice: "A"}, u.ID)
		require.NoError(t, err)
		maj, err := s.GetTache(tache.ID)
		require.NoError(t, err)
		require.Equal(t, models.TacheEnRevision, maj.Statut)
		require.Len(t, activitesStatut(t, s, tache.ID), 1)

		// deuxième révision : déjà en révision, aucune activité de statut en plus
		_, err = s.CreateRevision(&models.Revision{PieceJointeID: pj.ID, Indice: "B"}, u.ID)
		require.NoError(t, err)
		require.Len(t, activitesStatut(t, s, tache.ID), 1)
	})

	t.Run("RevisionsOrdreAffichage", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		tache, err := s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T"}, u.ID)
		require.NoError(t, err)
		pj, err := s.CreatePieceJointe(&models.PieceJointe{TacheID: tache.ID, Nom: "plan.pdf"}, u.ID)
		require.NoError(t, err)

		for _, indice := range []string{"A", "B", "C"} {
			_, err = s.CreateRevision(&models.Revision{PieceJointeID: pj.ID, Indice: indice}, u.ID)
			require.NoError(t, err)
		}
		revisions, err := s.ListRevisionsByPieceJointe(pj.ID)
		require.NoError(t, err)
		require.Len(t, revisions, 3)
		require.Equal(t, "C", revisions[0].Indice)
		require.Equal(t, "A", revisions[2].Indice)
	})

	t.Run("PaireLotPiloteUnique", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		pilote := creerUtilisateur(t, s, "bob", models.RoleChefEquipe)
		c := creerChantier(t, s, u.ID)
		lot, err := s.CreateLot(&models.Lot{ChantierID: c.ID, Nom: "Lot"}, u.ID)
		require.NoError(t, err)

		premier, err := s.AddLotPilote(lot.ID, pilote.ID, "pilote", u.ID)
		require.NoError(t, err)
		second, err := s.AddLotPilote(lot.ID, pilote.ID, "pilote", u.ID)
		require.NoError(t, err)
		require.Equal(t, premier.ID, second.ID)

		pilotes, err := s.ListLotPilotes(lot.ID)
		require.NoError(t, err)
		require.Len(t, pilotes, 1)
	})

	t.Run("FanoutNotificationsExclutActeur", func(t *testing.T) {
		s := newStore(t)
		acteur := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		autre := creerUtilisateur(t, s, "bob", models.RoleIntervenant)
		c := creerChantier(t, s, acteur.ID)
		tache, err := s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T"}, acteur.ID)
		require.NoError(t, err)
		_, err = s.AddTacheIntervenant(tache.ID, acteur.ID, acteur.ID)
		require.NoError(t, err)
		_, err = s.AddTacheIntervenant(tache.ID, autre.ID, acteur.ID)
		require.NoError(t, err)

		// l'affectation d'intervenant ne notifie personne
		boite, err := s.GetNotificationsForUser(autre.ID)
		require.NoError(t, err)
		require.Empty(t, boite)

		_, err = s.CreatePieceJointe(&models.PieceJointe{TacheID: tache.ID, Nom: "plan.pdf"}, acteur.ID)
		require.NoError(t, err)

		boite, err = s.GetNotificationsForUser(autre.ID)
		require.NoError(t, err)
		require.Len(t, boite, 1)
		require.False(t, boite[0].Lu)
		require.Equal(t, models.TargetTache, boite[0].TargetType)
		require.Equal(t, tache.ID, boite[0].TargetID)

		boiteActeur, err := s.GetNotificationsForUser(acteur.ID)
		require.NoError(t, err)
		require.Empty(t, boiteActeur)

		lu, err := s.MarkNotificationRead(boite[0].ID)
		require.NoError(t, err)
		require.True(t, lu.Lu)
	})

	t.Run("UtilisateurProtege", func(t *testing.T) {
		s := newStore(t)
		directeur := creerUtilisateur(t, s, "dir", models.RoleDirecteur)
		c := creerChantier(t, s, directeur.ID)
		lot, err := s.CreateLot(&models.Lot{ChantierID: c.ID, Nom: "Lot"}, directeur.ID)
		require.NoError(t, err)
		_, err = s.AddLotPilote(lot.ID, directeur.ID, "pilote", directeur.ID)
		require.NoError(t, err)

		ok, err := s.DeleteUser(directeur.ID)
		require.False(t, ok)
		require.True(t, IsForbidden(err))

		// rien n'a bougé
		_, err = s.GetUser(directeur.ID)
		require.NoError(t, err)
		pilotes, err := s.ListLotPilotes(lot.ID)
		require.NoError(t, err)
		require.Len(t, pilotes, 1)
	})

	t.Run("SuppressionUtilisateurDetacheJointures", func(t *testing.T) {
		s := newStore(t)
		conducteur := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		ouvrier := creerUtilisateur(t, s, "bob", models.RoleIntervenant)
		c, err := s.CreateChantier(&models.Chantier{Nom: "C", ResponsableID: &ouvrier.ID}, conducteur.ID)
		require.NoError(t, err)
		lot, err := s.CreateLot(&models.Lot{ChantierID: c.ID, Nom: "Lot"}, conducteur.ID)
		require.NoError(t, err)
		tache, err := s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T"}, conducteur.ID)
		require.NoError(t, err)
		equipe, err := s.CreateEquipe(&models.Equipe{Nom: "E"})
		require.NoError(t, err)
		_, err = s.AddLotPilote(lot.ID, ouvrier.ID, "pilote", conducteur.ID)
		require.NoError(t, err)
		_, err = s.AddTacheIntervenant(tache.ID, ouvrier.ID, conducteur.ID)
		require.NoError(t, err)
		_, err = s.AddEquipeMembre(equipe.ID, ouvrier.ID)
		require.NoError(t, err)

		ok, err := s.DeleteUser(ouvrier.ID)
		require.NoError(t, err)
		require.True(t, ok)

		pilotes, _ := s.ListLotPilotes(lot.ID)
		require.Empty(t, pilotes)
		intervenants, _ := s.ListTacheIntervenants(tache.ID)
		require.Empty(t, intervenants)
		membres, _ := s.ListEquipeMembres(equipe.ID)
		require.Empty(t, membres)

		// la référence optionnelle du chantier reste, tolérée en lecture
		maj, err := s.GetChantier(c.ID)
		require.NoError(t, err)
		require.NotNil(t, maj.ResponsableID)
		require.Equal(t, ouvrier.ID, *maj.ResponsableID)
	})

	t.Run("CascadeChantierComplete", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)

		var tacheIDs []uint
		var pjIDs []uint
		for i := 0; i < 2; i++ {
			lot, err := s.CreateLot(&models.Lot{ChantierID: c.ID, Nom: "Lot"}, u.ID)
			require.NoError(t, err)
			for j := 0; j < 2; j++ {
				tache, err := s.CreateTache(&models.Tache{ChantierID: c.ID, LotID: &lot.ID, Nom: "T"}, u.ID)
				require.NoError(t, err)
				tacheIDs = append(tacheIDs, tache.ID)
				pj, err := s.CreatePieceJointe(&models.PieceJointe{TacheID: tache.ID, Nom: "plan.pdf"}, u.ID)
				require.NoError(t, err)
				pjIDs = append(pjIDs, pj.ID)
				_, err = s.CreateRevision(&models.Revision{PieceJointeID: pj.ID, Indice: "A"}, u.ID)
				require.NoError(t, err)
			}
		}
		// une tâche directement sur le chantier, hors lot
		directe, err := s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "Directe"}, u.ID)
		require.NoError(t, err)
		tacheIDs = append(tacheIDs, directe.ID)

		ok, err := s.DeleteChantier(c.ID)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = s.GetChantier(c.ID)
		require.True(t, IsNotFound(err))
		lots, err := s.ListLotsByChantier(c.ID)
		require.NoError(t, err)
		require.Empty(t, lots)
		for _, id := range tacheIDs {
			_, err = s.GetTache(id)
			require.True(t, IsNotFound(err))
			activites, err := s.ListActivitesForTarget(models.TargetTache, id)
			require.NoError(t, err)
			require.Empty(t, activites)
		}
		for _, id := range pjIDs {
			_, err = s.GetPieceJointe(id)
			require.True(t, IsNotFound(err))
			revisions, err := s.ListRevisionsByPieceJointe(id)
			require.NoError(t, err)
			require.Empty(t, revisions)
		}

		stats, err := s.GetDashboardStats()
		require.NoError(t, err)
		require.Zero(t, stats.RevisionsPlans)
	})

	t.Run("CascadeRessource", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		tache, err := s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T"}, u.ID)
		require.NoError(t, err)
		grue, err := s.CreateRessource(&models.Ressource{Nom: "Grue", Type: models.RessourceMateriel})
		require.NoError(t, err)
		_, err = s.CreateAffectation(&models.RessourceAffectation{
			RessourceID: grue.ID, TacheID: tache.ID,
			DateDebut: jour(2024, 5, 1), DateFin: jour(2024, 5, 10),
		})
		require.NoError(t, err)
		_, err = s.CreateDisponibilite(&models.RessourceDisponibilite{
			RessourceID: grue.ID,
			DateDebut:   jour(2024, 6, 1), DateFin: jour(2024, 6, 30),
		})
		require.NoError(t, err)

		ok, err := s.DeleteRessource(grue.ID)
		require.NoError(t, err)
		require.True(t, ok)

		affectations, err := s.ListAffectationsByRessource(grue.ID)
		require.NoError(t, err)
		require.Empty(t, affectations)
		disponibilites, err := s.ListDisponibilitesByRessource(grue.ID)
		require.NoError(t, err)
		require.Empty(t, disponibilites)
	})

	t.Run("FenetrePlanning", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		tache, err := s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T"}, u.ID)
		require.NoError(t, err)
		grue, err := s.CreateRessource(&models.Ressource{Nom: "Grue", Type: models.RessourceMateriel})
		require.NoError(t, err)
		_, err = s.CreateAffectation(&models.RessourceAffectation{
			RessourceID: grue.ID, TacheID: tache.ID,
			DateDebut: jour(2024, 5, 1), DateFin: jour(2024, 5, 10),
		})
		require.NoError(t, err)

		// fenêtre chevauchante : incluse
		planning, err := s.GetPlanning(jour(2024, 5, 5), jour(2024, 5, 20))
		require.NoError(t, err)
		require.Len(t, planning.Affectations, 1)
		require.NotNil(t, planning.Affectations[0].Ressource)
		require.Equal(t, "Grue", planning.Affectations[0].Ressource.Nom)
		require.NotNil(t, planning.Affectations[0].Tache)
		require.Equal(t, tache.ID, planning.Affectations[0].Tache.ID)

		// fenêtre disjointe : exclue
		planning, err = s.GetPlanning(jour(2024, 5, 11), jour(2024, 5, 20))
		require.NoError(t, err)
		require.Empty(t, planning.Affectations)

		// borne exacte : incluse
		planning, err = s.GetPlanning(jour(2024, 5, 10), jour(2024, 5, 20))
		require.NoError(t, err)
		require.Len(t, planning.Affectations, 1)
	})

	t.Run("PlanningTriParDateDebut", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		tache, err := s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T"}, u.ID)
		require.NoError(t, err)
		grue, err := s.CreateRessource(&models.Ressource{Nom: "Grue"})
		require.NoError(t, err)

		// insérées dans le désordre
		_, err = s.CreateAffectation(&models.RessourceAffectation{
			RessourceID: grue.ID, TacheID: tache.ID,
			DateDebut: jour(2024, 5, 8), DateFin: jour(2024, 5, 12),
		})
		require.NoError(t, err)
		_, err = s.CreateAffectation(&models.RessourceAffectation{
			RessourceID: grue.ID, TacheID: tache.ID,
			DateDebut: jour(2024, 5, 2), DateFin: jour(2024, 5, 6),
		})
		require.NoError(t, err)

		planning, err := s.GetPlanning(jour(2024, 5, 1), jour(2024, 5, 31))
		require.NoError(t, err)
		require.Len(t, planning.Affectations, 2)
		require.True(t, planning.Affectations[0].Affectation.DateDebut.Before(
			planning.Affectations[1].Affectation.DateDebut))
	})

	t.Run("ParametreUpsert", func(t *testing.T) {
		s := newStore(t)
		premier, err := s.SetParametre("entreprise.nom", "BTP")
		require.NoError(t, err)
		second, err := s.SetParametre("entreprise.nom", "BTP Construction")
		require.NoError(t, err)
		require.Equal(t, premier.ID, second.ID)
		require.Equal(t, "BTP Construction", second.Valeur)

		parametres, err := s.ListParametres()
		require.NoError(t, err)
		require.Len(t, parametres, 1)

		lu, err := s.GetParametre("entreprise.nom")
		require.NoError(t, err)
		require.Equal(t, "BTP Construction", lu.Valeur)
	})

	t.Run("StatsTableauDeBord", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		_, err := s.CreateChantier(&models.Chantier{Nom: "Fini", Statut: models.ChantierTermine}, u.ID)
		require.NoError(t, err)
		_, err = s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T1", Statut: models.TacheEnCours}, u.ID)
		require.NoError(t, err)
		_, err = s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T2", Statut: models.TacheEnRetard}, u.ID)
		require.NoError(t, err)

		stats, err := s.GetDashboardStats()
		require.NoError(t, err)
		require.Equal(t, 1, stats.ChantiersActifs)
		require.Equal(t, 1, stats.TachesEnCours)
		require.Equal(t, 1, stats.TachesEnRetard)
	})

	t.Run("StatsParLot", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		lot, err := s.CreateLot(&models.Lot{ChantierID: c.ID, Nom: "Lot"}, u.ID)
		require.NoError(t, err)
		_, err = s.CreateTache(&models.Tache{ChantierID: c.ID, LotID: &lot.ID, Nom: "T1", Statut: models.TacheTerminee}, u.ID)
		require.NoError(t, err)
		_, err = s.CreateTache(&models.Tache{ChantierID: c.ID, LotID: &lot.ID, Nom: "T2"}, u.ID)
		require.NoError(t, err)
		_, err = s.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "Directe"}, u.ID)
		require.NoError(t, err)

		lotStats, err := s.GetLotStats(lot.ID)
		require.NoError(t, err)
		require.Equal(t, 2, lotStats.TachesCount)
		require.Equal(t, 1, lotStats.TachesTermineesCount)

		chantierStats, err := s.GetChantierStats(c.ID)
		require.NoError(t, err)
		require.Equal(t, 3, chantierStats.TachesCount)
		require.Equal(t, 1, chantierStats.TachesTermineesCount)
	})

	t.Run("ScenarioComplet", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c1 := creerChantier(t, s, u.ID)
		l1, err := s.CreateLot(&models.Lot{ChantierID: c1.ID, Nom: "L1"}, u.ID)
		require.NoError(t, err)
		t1, err := s.CreateTache(&models.Tache{ChantierID: c1.ID, LotID: &l1.ID, Nom: "T1"}, u.ID)
		require.NoError(t, err)
		d1, err := s.CreatePieceJointe(&models.PieceJointe{TacheID: t1.ID, Nom: "D1"}, u.ID)
		require.NoError(t, err)
		_, err = s.CreateRevision(&models.Revision{PieceJointeID: d1.ID, Indice: "A"}, u.ID)
		require.NoError(t, err)

		maj, err := s.GetTache(t1.ID)
		require.NoError(t, err)
		require.Equal(t, models.TacheEnRevision, maj.Statut)

		ok, err := s.DeleteLot(l1.ID)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = s.GetTache(t1.ID)
		require.True(t, IsNotFound(err))
		_, err = s.GetPieceJointe(d1.ID)
		require.True(t, IsNotFound(err))
		revisions, err := s.ListRevisionsByPieceJointe(d1.ID)
		require.NoError(t, err)
		require.Empty(t, revisions)
		activites, err := s.ListActivitesForTarget(models.TargetTache, t1.ID)
		require.NoError(t, err)
		require.Empty(t, activites)
	})

	t.Run("JournalOrdreInverse", func(t *testing.T) {
		s := newStore(t)
		u := creerUtilisateur(t, s, "alice", models.RoleConducteur)
		c := creerChantier(t, s, u.ID)
		_, err := s.CreateLot(&models.Lot{ChantierID: c.ID, Nom: "Lot"}, u.ID)
		require.NoError(t, err)

		activites, err := s.ListActivites(0)
		require.NoError(t, err)
		require.Len(t, activites, 2)
		// le plus récent d'abord
		require.Greater(t, activites[0].ID, activites[1].ID)

		limite, err := s.ListActivites(1)
		require.NoError(t, err)
		require.Len(t, limite, 1)
		require.Equal(t, activites[0].ID, limite[0].ID)
	})
}

func ptr[T any](v T) *T {
	return &v
}

func jour(annee int, mois time.Month, j int) time.Time {
	return time.Date(annee, mois, j, 0, 0, 0, 0, time.UTC)
}

package storage

import (
	"fmt"
	"time"

	"chantier-go/internal/models"
)

// Seed charge un jeu de données de démonstration à travers la façade, pour
// n'importe quel backend. Appel explicite au démarrage, jamais un effet de
// bord d'import. Ne fait rien si des chantiers existent déjà.
func Seed(s Store) error {
	chantiers, err := s.ListChantiers()
	if err != nil {
		return err
	}
	if len(chantiers) > 0 {
		return nil
	}

	conducteur, err := s.CreateUser(&models.User{
		Nom:      "Claire Morel",
		Role:     models.RoleConducteur,
		Email:    "c.morel@example.fr",
		Username: "cmorel",
	})
	if err != nil {
		return fmt.Errorf("seed utilisateur: %w", err)
	}
	chef, err := s.CreateUser(&models.User{
		Nom:      "Karim Benali",
		Role:     models.RoleChefEquipe,
		Email:    "k.benali@example.fr",
		Username: "kbenali",
	})
	if err != nil {
		return fmt.Errorf("seed utilisateur: %w", err)
	}

	chantier, err := s.CreateChantier(&models.Chantier{
		Nom:           "Résidence Les Ormes",
		Adresse:       "12 rue des Peupliers, Nantes",
		Statut:        models.ChantierActif,
		Description:   "Construction de 24 logements collectifs",
		ResponsableID: &conducteur.ID,
	}, conducteur.ID)
	if err != nil {
		return fmt.Errorf("seed chantier: %w", err)
	}

	lot, err := s.CreateLot(&models.Lot{
		ChantierID: chantier.ID,
		Nom:        "Gros œuvre",
		Numero:     "02",
	}, conducteur.ID)
	if err != nil {
		return fmt.Errorf("seed lot: %w", err)
	}
	if _, err := s.AddLotPilote(lot.ID, chef.ID, "pilote", conducteur.ID); err != nil {
		return fmt.Errorf("seed pilote: %w", err)
	}

	tache, err := s.CreateTache(&models.Tache{
		ChantierID:  chantier.ID,
		LotID:       &lot.ID,
		Nom:         "Coulage des fondations",
		Description: "Semelles filantes bâtiment A",
		Statut:      models.TacheEnCours,
		Progression: 40,
	}, conducteur.ID)
	if err != nil {
		return fmt.Errorf("seed tâche: %w", err)
	}
	if _, err := s.AddTacheIntervenant(tache.ID, chef.ID, conducteur.ID); err != nil {
		return fmt.Errorf("seed intervenant: %w", err)
	}

	grue, err := s.CreateRessource(&models.Ressource{
		Nom:            "Grue à tour GT-40",
		Type:           models.RessourceMateriel,
		Unite:          "jour",
		CoutJournalier: 850,
	})
	if err != nil {
		return fmt.Errorf("seed ressource: %w", err)
	}
	debut := time.Now().AddDate(0, 0, -7)
	fin := time.Now().AddDate(0, 0, 21)
	if _, err := s.CreateAffectation(&models.RessourceAffectation{
		RessourceID: grue.ID,
		TacheID:     tache.ID,
		DateDebut:   debut,
		DateFin:     fin,
		Quantite:    1,
	}); err != nil {
		return fmt.Errorf("seed affectation: %w", err)
	}

	equipe, err := s.CreateEquipe(&models.Equipe{
		Nom:           "Équipe gros œuvre",
		ResponsableID: &chef.ID,
	})
	if err != nil {
		return fmt.Errorf("seed équipe: %w", err)
	}
	if _, err := s.AddEquipeMembre(equipe.ID, chef.ID); err != nil {
		return fmt.Errorf("seed membre: %w", err)
	}

	if _, err := s.SetParametre("entreprise.nom", "BTP Construction"); err != nil {
		return fmt.Errorf("seed paramètre: %w", err)
	}

	return nil
}

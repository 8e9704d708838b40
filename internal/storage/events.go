package storage

import (
	"fmt"

	"chantier-go/internal/models"
)

// Event événement de domaine produit par une mutation. Le dispatcher le
// traduit en ligne Activite et en Notifications dans la même section critique
// que la mutation principale.
type Event struct {
	Type        string
	Description string
	ActeurID    *uint
	TargetID    uint
	TargetType  string
	Metadata    models.JSONMap

	// Destinataires des notifications, acteur déjà exclu
	Notifier []uint
	Message  string
}

// acteurInconnu nom affiché quand la référence acteur ne résout plus
const acteurInconnu = "Utilisateur inconnu"

func acteurRef(id uint) *uint {
	if id == 0 {
		return nil
	}
	v := id
	return &v
}

func evChantierCree(acteurNom string, acteurID uint, c *models.Chantier) Event {
	return Event{
		Type:        models.ActiviteCreation,
		Description: fmt.Sprintf("%s a créé le chantier %s", acteurNom, c.Nom),
		ActeurID:    acteurRef(acteurID),
		TargetID:    c.ID,
		TargetType:  models.TargetChantier,
	}
}

func evLotCree(acteurNom string, acteurID uint, l *models.Lot, chantierNom string) Event {
	return Event{
		Type:        models.ActiviteCreation,
		Description: fmt.Sprintf("%s a créé le lot %s sur le chantier %s", acteurNom, l.Nom, chantierNom),
		ActeurID:    acteurRef(acteurID),
		TargetID:    l.ChantierID,
		TargetType:  models.TargetChantier,
		Metadata:    models.JSONMap{"lot_id": l.ID},
	}
}

func evTacheCreee(acteurNom string, acteurID uint, t *models.Tache) Event {
	return Event{
		Type:        models.ActiviteCreation,
		Description: fmt.Sprintf("%s a créé la tâche %s", acteurNom, t.Nom),
		ActeurID:    acteurRef(acteurID),
		TargetID:    t.ID,
		TargetType:  models.TargetTache,
	}
}

func evPiloteAjoute(acteurNom string, acteurID uint, piloteNom string, l *models.Lot) Event {
	return Event{
		Type:        models.ActiviteAffectation,
		Description: fmt.Sprintf("%s a désigné %s pilote du lot %s", acteurNom, piloteNom, l.Nom),
		ActeurID:    acteurRef(acteurID),
		TargetID:    l.ChantierID,
		TargetType:  models.TargetChantier,
		Metadata:    models.JSONMap{"lot_id": l.ID},
	}
}

func evIntervenantAjoute(acteurNom string, acteurID uint, intervenantNom string, t *models.Tache) Event {
	return Event{
		Type:        models.ActiviteAffectation,
		Description: fmt.Sprintf("%s a affecté %s à la tâche %s", acteurNom, intervenantNom, t.Nom),
		ActeurID:    acteurRef(acteurID),
		TargetID:    t.ID,
		TargetType:  models.TargetTache,
	}
}

func evDocumentAjoute(acteurNom string, acteurID uint, pj *models.PieceJointe, t *models.Tache, destinataires []uint) Event {
	return Event{
		Type:        models.ActiviteDocument,
		Description: fmt.Sprintf("%s a ajouté le document %s à la tâche %s", acteurNom, pj.Nom, t.Nom),
		ActeurID:    acteurRef(acteurID),
		TargetID:    t.ID,
		TargetType:  models.TargetTache,
		Metadata:    models.JSONMap{"piece_jointe_id": pj.ID},
		Notifier:    destinataires,
		Message:     fmt.Sprintf("Nouveau document %s sur la tâche %s", pj.Nom, t.Nom),
	}
}

func evRevisionCreee(acteurNom string, acteurID uint, r *models.Revision, pj *models.PieceJointe, t *models.Tache, destinataires []uint) Event {
	return Event{
		Type:        models.ActiviteRevisionDocument,
		Description: fmt.Sprintf("%s a créé la révision %s du document %s", acteurNom, r.Indice, pj.Nom),
		ActeurID:    acteurRef(acteurID),
		TargetID:    t.ID,
		TargetType:  models.TargetTache,
		Metadata:    models.JSONMap{"piece_jointe_id": pj.ID, "revision_id": r.ID},
		Notifier:    destinataires,
		Message:     fmt.Sprintf("Révision %s du document %s sur la tâche %s", r.Indice, pj.Nom, t.Nom),
	}
}

func evStatutChange(acteurNom string, acteurID uint, t *models.Tache, ancien, nouveau string) Event {
	return Event{
		Type:        models.ActiviteChangementStatut,
		Description: fmt.Sprintf("%s a passé la tâche %s de %s à %s", acteurNom, t.Nom, ancien, nouveau),
		ActeurID:    acteurRef(acteurID),
		TargetID:    t.ID,
		TargetType:  models.TargetTache,
		Metadata:    models.JSONMap{"ancien": ancien, "nouveau": nouveau},
	}
}

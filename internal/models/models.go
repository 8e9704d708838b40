package models

import (
	"chantier-go/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB ouvre la base SQLite et retourne le handle gorm.
// La base est passée explicitement aux consommateurs, pas de singleton.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate crée ou met à jour les tables de toutes les entités.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Chantier{},
		&Lot{},
		&LotPilote{},
		&Tache{},
		&TacheIntervenant{},
		&PieceJointe{},
		&Revision{},
		&Ressource{},
		&RessourceAffectation{},
		&RessourceDisponibilite{},
		&Equipe{},
		&EquipeMembre{},
		&Parametre{},
		&Activite{},
		&Notification{},
	)
}

package main

import (
	"log"
	"os"

	"chantier-go/internal/config"
	"chantier-go/internal/models"
	"chantier-go/internal/router"
	"chantier-go/internal/service"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"
	"chantier-go/pkg/ratelimit"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("chargement de la configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// sélection du backend de stockage
	var store storage.Store
	switch cfg.Database.Driver {
	case config.DriverMemoire:
		store = storage.NewMemoryStore()
		logger.Info("stockage en mémoire")
	default:
		db, err := models.InitDB(cfg)
		if err != nil {
			log.Fatalf("ouverture de la base: %v", err)
		}
		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("migration de la base: %v", err)
		}
		store = storage.NewGormStore(db)
		logger.WithField("path", cfg.Database.Path).Info("stockage SQLite")
	}

	// limiteur de tentatives de connexion, actif seulement si Redis est configuré
	var limiter *ratelimit.Limiter
	if cfg.Redis.Host != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		limiter = ratelimit.NewLimiter(
			redisClient,
			cfg.Redis.LoginMaxTentative,
			"login_attempts:",
			cfg.Redis.GetLoginFenetre(),
		)
	} else {
		logger.Warn("Redis non configuré, limiteur de connexion désactivé")
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		cfg.JWT.GetExpireDuration(),
	)

	authService := service.NewAuthService(store, jwtManager, limiter, cfg)

	if err := authService.InitDirecteur(); err != nil {
		logger.Warnf("initialisation du directeur: %v", err)
	}

	if cfg.Seed {
		if err := storage.Seed(store); err != nil {
			logger.Warnf("chargement du jeu de démonstration: %v", err)
		}
	}

	r := router.SetupRouter(cfg, jwtManager, logger, store, authService)

	addr := cfg.Server.GetAddress()
	logger.Infof("serveur démarré sur %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("démarrage du serveur: %v", err)
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

var (
	globalConfig *Config
	once         sync.Once
	configPath   string
)

// LoadConfig charge le fichier de configuration. Le premier appel fixe la
// configuration globale, les suivants la réutilisent.
func LoadConfig(configFile string) (*Config, error) {
	var err error
	var cfg *Config

	once.Do(func() {
		cfg, err = loadConfigFromFile(configFile)
		if err == nil {
			globalConfig = cfg
		}
		configPath = configFile
	})

	return globalConfig, err
}

// loadConfigFromFile lit et valide un fichier de configuration
func loadConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration: %w", err)
	}

	setDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("validation de la configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults applique les valeurs par défaut
func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 18080
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverSQLite
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./database/chantier.db"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.LoginMaxTentative == 0 {
		cfg.Redis.LoginMaxTentative = 10
	}
	if cfg.Redis.LoginFenetre == 0 {
		cfg.Redis.LoginFenetre = 300
	}
	if cfg.JWT.Algorithm == "" {
		cfg.JWT.Algorithm = "HS256"
	}
	if cfg.JWT.ExpireMinutes == 0 {
		cfg.JWT.ExpireMinutes = 43200
	}
	if cfg.Directeur.Username == "" {
		cfg.Directeur.Username = "directeur"
	}
	if cfg.Directeur.Nom == "" {
		cfg.Directeur.Nom = "Directeur"
	}
	if cfg.CORS.AllowMethods == nil {
		cfg.CORS.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if cfg.CORS.AllowHeaders == nil {
		cfg.CORS.AllowHeaders = []string{"*"}
	}
}

// validateConfig vérifie la cohérence de la configuration
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("port serveur invalide: %d", cfg.Server.Port)
	}

	if cfg.Database.Driver != DriverSQLite && cfg.Database.Driver != DriverMemoire {
		return fmt.Errorf("pilote de stockage inconnu: %s", cfg.Database.Driver)
	}

	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("la clé secrète JWT est obligatoire")
	}

	if cfg.Directeur.Password == "" {
		return fmt.Errorf("le mot de passe du directeur est obligatoire")
	}

	if cfg.Database.Driver == DriverSQLite {
		dbDir := filepath.Dir(cfg.Database.Path)
		if _, err := os.Stat(dbDir); os.IsNotExist(err) {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				return fmt.Errorf("création du répertoire de la base: %w", err)
			}
		}
	}

	return nil
}

// GetConfig retourne la configuration globale
func GetConfig() *Config {
	return globalConfig
}

package config

import (
	"fmt"
	"time"
)

// Pilotes de stockage acceptés en configuration
const (
	DriverSQLite  = "sqlite"
	DriverMemoire = "memoire"
)

// Config configuration de l'application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis_service"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Directeur DirecteurConfig `mapstructure:"directeur"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Seed      bool            `mapstructure:"seed"`
}

// ServerConfig configuration du serveur HTTP
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

// GetAddress adresse d'écoute du serveur
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig configuration du stockage
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// RedisConfig configuration Redis
type RedisConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	DB                int    `mapstructure:"db"`
	Password          string `mapstructure:"password"`
	LoginMaxTentative int    `mapstructure:"login_max_tentatives"`
	LoginFenetre      int    `mapstructure:"login_fenetre_secondes"`
}

// GetAddress adresse du serveur Redis
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// GetLoginFenetre fenêtre de comptage des tentatives de connexion
func (r *RedisConfig) GetLoginFenetre() time.Duration {
	return time.Duration(r.LoginFenetre) * time.Second
}

// JWTConfig configuration JWT
type JWTConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	Algorithm     string `mapstructure:"algorithm"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

// GetExpireDuration durée de validité des tokens
func (j *JWTConfig) GetExpireDuration() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

// DirecteurConfig compte directeur créé au premier démarrage
type DirecteurConfig struct {
	Nom      string `mapstructure:"nom"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// CORSConfig configuration CORS
type CORSConfig struct {
	Origins          []string `mapstructure:"origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chantier-go/internal/config"
	"chantier-go/internal/dto"
	"chantier-go/internal/models"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"
	"chantier-go/pkg/ratelimit"
)

// ErrTropDeTentatives trop de connexions échouées depuis la même adresse
var ErrTropDeTentatives = errors.New("trop de tentatives de connexion, réessayez plus tard")

// IsTropDeTentatives vérifie si l'erreur vient du limiteur de tentatives
func IsTropDeTentatives(err error) bool {
	return errors.Is(err, ErrTropDeTentatives)
}

// AuthService authentification et amorçage du compte directeur
type AuthService struct {
	store      storage.Store
	jwtManager *utils.JWTManager
	limiter    *ratelimit.Limiter
	cfg        *config.Config
}

// NewAuthService crée le service d'authentification. limiter peut être nil,
// le plafonnement des tentatives est alors désactivé.
func NewAuthService(store storage.Store, jwtManager *utils.JWTManager, limiter *ratelimit.Limiter, cfg *config.Config) *AuthService {
	return &AuthService{
		store:      store,
		jwtManager: jwtManager,
		limiter:    limiter,
		cfg:        cfg,
	}
}

// Login vérifie les identifiants et émet un token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, clientIP string) (*dto.LoginResponse, error) {
	if s.limiter != nil {
		if err := s.limiter.Allow(ctx, clientIP); err != nil {
			if errors.Is(err, ratelimit.ErrLimite) {
				return nil, ErrTropDeTentatives
			}
			return nil, fmt.Errorf("limiteur de connexion: %w", err)
		}
	}

	user, err := s.store.GetUserByUsername(req.Username)
	if err != nil {
		return nil, errors.New("identifiants invalides")
	}

	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, errors.New("identifiants invalides")
	}

	if s.limiter != nil {
		// connexion réussie, le compteur de l'IP repart de zéro
		_ = s.limiter.Reset(ctx, clientIP)
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("émission du token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        userInfo(user),
	}, nil
}

// GetMe retourne le profil de l'utilisateur authentifié
func (s *AuthService) GetMe(userID uint) (*dto.UserInfo, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	info := userInfo(user)
	return &info, nil
}

// InitDirecteur crée le compte directeur au premier démarrage. Sans effet
// si un directeur existe déjà.
func (s *AuthService) InitDirecteur() error {
	users, err := s.store.ListUsers()
	if err != nil {
		return fmt.Errorf("lecture des utilisateurs: %w", err)
	}
	for _, u := range users {
		if u.Role == models.RoleDirecteur {
			return nil
		}
	}

	// le mot de passe configuré peut déjà être un hachage bcrypt
	passwordHash := s.cfg.Directeur.Password
	if !strings.HasPrefix(passwordHash, "$2a$") && !strings.HasPrefix(passwordHash, "$2b$") {
		hashed, err := utils.HashPassword(passwordHash)
		if err != nil {
			return fmt.Errorf("hachage du mot de passe: %w", err)
		}
		passwordHash = hashed
	}

	_, err = s.store.CreateUser(&models.User{
		Nom:          s.cfg.Directeur.Nom,
		Role:         models.RoleDirecteur,
		Username:     s.cfg.Directeur.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return fmt.Errorf("création du directeur: %w", err)
	}
	return nil
}

func userInfo(u *models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:       u.ID,
		Nom:      u.Nom,
		Username: u.Username,
		Role:     u.Role,
		Email:    u.Email,
	}
}

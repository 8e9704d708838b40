package dto

// LoginRequest requête de connexion
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse réponse de connexion
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserInfo `json:"user"`
}

// UserInfo profil public d'un utilisateur
type UserInfo struct {
	ID       uint   `json:"id"`
	Nom      string `json:"nom"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

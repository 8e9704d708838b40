package dto

// CreateUserRequest création d'un utilisateur
type CreateUserRequest struct {
	Nom      string `json:"nom" binding:"required,max=100"`
	Role     string `json:"role" binding:"required,oneof=directeur conducteur_travaux chef_equipe intervenant"`
	Email    string `json:"email" binding:"omitempty,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest mise à jour partielle d'un utilisateur
type UpdateUserRequest struct {
	Nom      *string `json:"nom" binding:"omitempty,max=100"`
	Role     *string `json:"role" binding:"omitempty,oneof=directeur conducteur_travaux chef_equipe intervenant"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

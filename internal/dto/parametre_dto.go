package dto

// SetParametreRequest création ou mise à jour d'un paramètre
type SetParametreRequest struct {
	Cle    string `json:"cle" binding:"required,max=255"`
	Valeur string `json:"valeur"`
}

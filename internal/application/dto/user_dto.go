package dto

// UserDraftRequest borrador de formulario de usuario.
type UserDraftRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario. Password se devuelve en texto plano
// porque el servicio remoto heredado así lo expone; una reconstrucción de
// producción necesita una capa real de hashing antes de conservar esto.
type UserResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserListResponse lista de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}

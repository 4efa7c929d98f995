package entity

// User representa una cuenta de usuario administrada contra el servicio remoto.
// UserID lo asigna el servicio remoto.
type User struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	// Password viaja y se almacena en texto plano porque el servicio remoto
	// heredado así lo expone. TODO: hashear con bcrypt cuando el backend
	// incorpore una capa real de autenticación.
	Password string `json:"password"`
}

// UserDraft es el borrador transitorio de un formulario de usuario.
type UserDraft struct {
	Username string
	Password string
}

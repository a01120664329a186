package dto

// LoginRequest credenciales de inicio de sesión del personal.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión con los datos del empleado.
type LoginResponse struct {
	Token string        `json:"token"`
	Staff StaffResponse `json:"staff"`
}

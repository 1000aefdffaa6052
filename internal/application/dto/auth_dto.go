package dto

// LoginRequest credencial del panel de administración: una sola contraseña
// compartida. No es una frontera de seguridad real, solo la puerta del panel.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token de sesión para las rutas de administración.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}

package auth

import (
	"github.com/tallertex/telas-api/internal/application/dto"
	"github.com/tallertex/telas-api/internal/domain"
	"github.com/tallertex/telas-api/pkg/jwt"
)

// Config contraseña del panel y parámetros del token de sesión.
type Config struct {
	AdminPassword string
	JWTSecret     string
	ExpMinutes    int
	Issuer        string
}

// AuthUseCase puerta del panel de administración: una contraseña compartida
// que al validar emite un token de sesión. No es una frontera de seguridad
// real y deliberadamente no se endurece (sin usuarios, sin hash): cambiar eso
// cambiaría la intención del producto.
type AuthUseCase struct {
	cfg Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cfg Config) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Login compara la contraseña con la configurada y emite el token de sesión.
// Contraseña incorrecta (o panel sin contraseña configurada) devuelve
// domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.cfg.AdminPassword == "" || in.Password != uc.cfg.AdminPassword {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.cfg.ExpMinutes * 60}, nil
}

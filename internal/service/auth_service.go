package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
	"github.com/dussanclaurer/pepito-s-app/internal/repository"
)

// AuthService handles login and user administration. Tokens are HS256 JWTs
// carrying the user id, display name and role.
type AuthService struct {
	usuarios  repository.UsuarioRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(usuarios repository.UsuarioRepository, jwtSecret string, jwtTTL time.Duration) *AuthService {
	return &AuthService{usuarios: usuarios, jwtSecret: []byte(jwtSecret), jwtTTL: jwtTTL}
}

// Login verifies the credentials and issues a token. Unknown emails, wrong
// passwords and deactivated accounts all return the same error.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.usuarios.FindByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCredencialesInvalidas
	}
	if err != nil {
		return nil, err
	}
	if !usuario.Activo {
		return nil, ErrCredencialesInvalidas
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrCredencialesInvalidas
	}

	ahora := time.Now()
	claims := jwt.MapClaims{
		"user_id": usuario.ID.String(),
		"nombre":  usuario.Nombre,
		"rol":     usuario.Rol,
		"iat":     ahora.Unix(),
		"exp":     ahora.Add(s.jwtTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, Usuario: *usuario}, nil
}

func (s *AuthService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*model.Usuario, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Email:        req.Email,
		Nombre:       req.Nombre,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Activo:       true,
	}
	err = s.usuarios.Create(ctx, usuario)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrEmailDuplicado
	}
	if err != nil {
		return nil, err
	}
	return usuario, nil
}

func (s *AuthService) ListarUsuarios(ctx context.Context) ([]model.Usuario, error) {
	return s.usuarios.List(ctx)
}

func (s *AuthService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*model.Usuario, error) {
	usuario, err := s.usuarios.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Recurso: "Usuario", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		usuario.Nombre = *req.Nombre
	}
	if req.Rol != nil {
		usuario.Rol = *req.Rol
	}
	if req.Activo != nil {
		usuario.Activo = *req.Activo
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}

	if err := s.usuarios.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

func (s *AuthService) DesactivarUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.usuarios.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Recurso: "Usuario", ID: id.String()}
		}
		return err
	}
	return s.usuarios.Desactivar(ctx, id)
}

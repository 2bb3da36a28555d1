package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ProfileCache cache-aside del perfil, acotado a la identidad (clave por
// user id) e invalidado en las transiciones login/logout. La implementación
// Redis vive en infrastructure; nil desactiva el cache.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*dto.UserResponse, error)
	Set(ctx context.Context, userID string, profile *dto.UserResponse) error
	Invalidate(ctx context.Context, userID string) error
}

// AuthUseCase casos de uso de autenticación: registro, login, perfil y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	cache    ProfileCache
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. cache puede ser nil.
func NewAuthUseCase(userRepo repository.UserRepository, cache ProfileCache, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, cache: cache, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt, persiste y emite token.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	return &dto.AuthResponse{User: out, Token: token}, nil
}

// Login verifica email/password, invalida el perfil cacheado de sesiones
// anteriores y genera un JWT nuevo.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, user.ID)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	return &dto.AuthResponse{User: out, Token: token}, nil
}

// Profile devuelve el perfil del usuario autenticado (cache-aside: primero
// el cache, si no la DB y se puebla el cache).
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, userID); err == nil && cached != nil {
			return cached, nil
		}
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.ToUserResponse(user)
	if uc.cache != nil {
		_ = uc.cache.Set(ctx, userID, &out)
	}
	return &out, nil
}

// Logout invalida el perfil cacheado. El token Bearer sigue siendo válido
// hasta su expiración (sin lista de revocación).
func (uc *AuthUseCase) Logout(ctx context.Context, userID string) error {
	if uc.cache != nil {
		return uc.cache.Invalidate(ctx, userID)
	}
	return nil
}

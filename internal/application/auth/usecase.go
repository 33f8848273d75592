package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bill-automation-api/internal/application/dto"
	"github.com/jhoicas/bill-automation-api/internal/domain"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
	"github.com/jhoicas/bill-automation-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, alta de operadores y emisión de tokens.
type AuthUseCase struct {
	userRepo         repository.UserRepository
	jwtCfg           JWTConfig
	defaultCompanyID string
	bcryptCost       int
}

// NewAuthUseCase construye el caso de uso de auth.
// defaultCompanyID es la empresa seleccionada en el token recién emitido por Login.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, defaultCompanyID string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:         userRepo,
		jwtCfg:           jwtCfg,
		defaultCompanyID: defaultCompanyID,
		bcryptCost:       bcrypt.DefaultCost,
	}
}

// WithBcryptCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.bcryptCost = cost
	return uc
}

// Login verifica usuario/password y emite un token con la empresa por defecto seleccionada.
// Usuario inexistente y password incorrecto devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.IssueToken(jwt.Subject{
		UserID:    user.ID,
		Username:  user.Username,
		CompanyID: uc.defaultCompanyID,
		Role:      user.Role,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:             token,
		User:              *toUserResponse(user),
		SelectedCompanyID: uc.defaultCompanyID,
	}, nil
}

// Register crea un operador con password hasheado. Devuelve domain.ErrDuplicate si el username existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, domain.NewValidationError("role", "debe ser admin o user")
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// IssueToken firma un token para el sujeto dado; se usa también al cambiar de empresa.
func (uc *AuthUseCase) IssueToken(sub jwt.Subject) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, sub, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// TokenBlacklist revokes tokens on logout. May be nil-backed in tests.
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	blacklist   TokenBlacklist
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, blacklist TokenBlacklist) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		blacklist:   blacklist,
	}
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidBloodGroup  = errors.New("donors must register a valid blood group")
	ErrInvalidDateOfBirth = errors.New("donors must be between 18 and 65 years old")
)

const (
	minDonorAge = 18
	maxDonorAge = 65
)

type RegisterParams struct {
	Login       string
	Password    string
	Role        domain.Role
	FullName    string
	BloodGroup  string
	DateOfBirth *time.Time
	City        string
	Area        string
	Phone       string
}

func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		age--
	}
	return age
}

func validateRegistration(params RegisterParams) error {
	switch params.Role {
	case domain.RoleDonor:
		if !domain.IsValidBloodGroup(params.BloodGroup) {
			return ErrInvalidBloodGroup
		}
		if params.DateOfBirth == nil {
			return ErrInvalidDateOfBirth
		}
		age := ageAt(*params.DateOfBirth, time.Now())
		if age < minDonorAge || age > maxDonorAge {
			return ErrInvalidDateOfBirth
		}
	case domain.RoleRecipient, domain.RoleAdmin:
	default:
		return ErrInvalidRole
	}
	return nil
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	if err := validateRegistration(params); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, params.Login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", params.Login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(params.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        params.Login,
		PasswordHash: hashedPassword,
		Role:         params.Role,
		FullName:     params.FullName,
		BloodGroup:   params.BloodGroup,
		DateOfBirth:  params.DateOfBirth,
		City:         params.City,
		Area:         params.Area,
		Phone:        params.Phone,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", params.Login), zap.String("role", string(params.Role)))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	identity := auth.Identity{
		UserID:     user.ID,
		Role:       string(user.Role),
		BloodGroup: user.BloodGroup,
		City:       user.City,
		Approved:   user.Approved,
	}
	token, err := s.jwtService.GenerateJWT(identity, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Logout revokes the presented token for its remaining lifetime.
func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	if s.blacklist == nil {
		return nil
	}
	ttl := auth.TokenTTL(claims, time.Now())
	if err := s.blacklist.BlacklistToken(ctx, claims.Id, ttl); err != nil {
		zap.L().Error("can't blacklist token", zap.Error(err))
		return err
	}
	return nil
}

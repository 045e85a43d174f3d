package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/kimthedrew/jobsabroad/internal/config"
	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/domain/dto"
)

// Claims is the JWT payload: subject identity plus role. Verification trusts
// these claims; only identity-sensitive endpoints re-fetch the account.
type Claims struct {
	UserID uuid.UUID       `json:"user_id"`
	Role   domain.UserType `json:"role"`
	jwt.RegisteredClaims
}

const bcryptCost = 10

type AuthService struct {
	cfg         *config.Config
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
}

func NewAuthService(cfg *config.Config, userRepo domain.UserRepository, profileRepo domain.ProfileRepository) *AuthService {
	return &AuthService{
		cfg:         cfg,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Register creates an account and its role profile. Job seekers must register
// from Kenya; the rule is checked here once and never re-validated.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	userType, err := domain.ParseUserType(req.UserType)
	if err != nil {
		return nil, err
	}

	if userType == domain.UserTypeJobSeeker && !domain.IsAllowedSeekerCountry(req.Country) {
		return nil, domain.NewValidationError("country", "job seekers must be from Kenya", domain.ErrInvalidField)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: string(hashed),
		UserType:       userType,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Country:        req.Country,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.createInitialProfile(ctx, user, req); err != nil {
		// The account exists; a missing profile only keeps the seeker out of
		// search until their first profile save.
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to create initial profile")
	}

	return user, nil
}

func (s *AuthService) createInitialProfile(ctx context.Context, user *domain.User, req *dto.RegisterRequest) error {
	if user.UserType == domain.UserTypeJobSeeker {
		location := req.Location
		if location == "" {
			location = "Kenya"
		}
		profile := &domain.JobSeekerProfile{
			UserID:   user.ID,
			Location: location,
			Skills:   []string{},
		}
		profile.BeforeSave()
		_, err := s.profileRepo.UpsertJobSeeker(ctx, profile)
		return err
	}

	location := req.Location
	if location == "" {
		location = user.Country
	}
	_, err := s.profileRepo.UpsertEmployer(ctx, &domain.EmployerProfile{
		UserID:      user.ID,
		CompanyName: req.CompanyName,
		Location:    location,
	})
	return err
}

// Login verifies credentials and returns the account with a signed token.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, string, error) {
	if err := domain.ValidateStruct(req); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrUnauthenticated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, "", domain.ErrUnauthenticated
	}

	token, err := s.GenerateToken(user.ID, user.UserType)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUser re-fetches the caller's account, asserting it still exists.
func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *AuthService) GenerateToken(userID uuid.UUID, role domain.UserType) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

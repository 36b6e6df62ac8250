package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/xdSharp/Dashly-sub000/internal/middleware"
	"github.com/xdSharp/Dashly-sub000/internal/models"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// BusinessStore resolves the business profile attached to an account.
type BusinessStore interface {
	GetOrCreate(ctx context.Context, ownerID uuid.UUID, name string) (*models.Business, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Business, error)
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const tokenTTL = 24 * time.Hour

// AuthService handles registration, login and token issuance.
type AuthService struct {
	users      UserStore
	businesses BusinessStore
	jwtSecret  string
}

func NewAuthService(users UserStore, businesses BusinessStore, jwtSecret string) *AuthService {
	return &AuthService{
		users:      users,
		businesses: businesses,
		jwtSecret:  jwtSecret,
	}
}

// Register creates a new user account with a default business profile.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	businessName := req.BusinessName
	if businessName == "" {
		businessName = req.Name
	}
	business, err := s.businesses.GetOrCreate(ctx, user.ID, businessName)
	if err != nil {
		return nil, fmt.Errorf("failed to create business profile: %w", err)
	}

	token, err := s.issueToken(user, business)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	business, err := s.businesses.GetByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load business profile: %w", err)
	}

	token, err := s.issueToken(user, business)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// CurrentUser loads the account behind a validated token.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	return s.users.GetByID(ctx, id)
}

func (s *AuthService) issueToken(user *models.User, business *models.Business) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	if business != nil {
		claims.BusinessID = business.ID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

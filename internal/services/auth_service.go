package services

import (
	"context"
	"time"

	"github.com/jobhunt/backend/internal/apperrors"
	"github.com/jobhunt/backend/internal/entities"
	"github.com/jobhunt/backend/internal/repositories"
	"github.com/jobhunt/backend/internal/security"
	"golang.org/x/crypto/bcrypt"
)

type userRepository interface {
	Add(ctx context.Context, user *entities.User) error
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}

type RegisterRequest struct {
	Username string
	Password string
	Sex      string
	Role     string
}

type RegisteredUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AuthService struct {
	users    userRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users userRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisteredUser, error) {

	role, err := entities.ToRole(req.Role)
	if err != nil {
		return nil, apperrors.Validation("role", "must be one of: hr, employee, unknown")
	}

	sex := entities.SexMale
	switch req.Sex {
	case "", string(entities.SexMale):
	case string(entities.SexFemale):
		sex = entities.SexFemale
	default:
		return nil, apperrors.Validation("sex", "must be one of: m, f")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entities.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Sex:          sex,
		Role:         role,
	}

	if err := s.users.Add(ctx, &user); err != nil {
		if repositories.IsUniqueViolation(err, "users.username") {
			return nil, apperrors.Validation("username", "username already taken")
		}
		return nil, err
	}

	return &RegisteredUser{ID: user.ID, Username: user.Username, Role: string(user.Role)}, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*Token, error) {

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	token, expiresAt, err := security.GenerateToken(user.ID, user.Role, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &Token{Token: token, ExpiresAt: expiresAt}, nil
}

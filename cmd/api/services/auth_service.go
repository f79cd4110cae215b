package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skilllink/cmd/api/auth"
	"skilllink/models"
	"skilllink/repositories"
)

var (
	ErrUserNotFound       = errors.New("user_not_found")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// AuthService is the identity provider: it registers accounts, checks
// passwords, and mints the opaque (userId, username) tokens the post
// operations consume. Accounts live in a flat users.json file.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account and returns a minted token for it.
func (s *AuthService) Register(username, password string) (auth.Identity, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return auth.Identity{}, "", &ValidationError{Message: "Username is required."}
	}
	if len(password) < 4 {
		return auth.Identity{}, "", &ValidationError{Message: "Password must be at least 4 characters."}
	}

	if _, err := s.users.FindByUsername(username); err == nil {
		return auth.Identity{}, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return auth.Identity{}, "", err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.Insert(user); err != nil {
		return auth.Identity{}, "", err
	}

	return s.mint(user)
}

// Login checks the password and returns a minted token.
func (s *AuthService) Login(username, password string) (auth.Identity, string, error) {
	user, err := s.users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return auth.Identity{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return auth.Identity{}, "", ErrInvalidCredentials
	}
	return s.mint(user)
}

// Profile resolves a token's identity against the user store.
func (s *AuthService) Profile(identity auth.Identity) (models.User, error) {
	user, err := s.users.FindByID(identity.ID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) mint(user models.User) (auth.Identity, string, error) {
	identity := auth.Identity{ID: user.ID, Username: user.Username}
	token, err := auth.Mint(identity)
	if err != nil {
		return auth.Identity{}, "", err
	}
	return identity, token, nil
}

package repositories

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"skilllink/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository persists registered accounts in a flat users.json file,
// following the same whole-file read/write model as the post store.
type UserRepository struct {
	path string
}

func NewUserRepository(dataDir string) *UserRepository {
	return &UserRepository{path: filepath.Join(dataDir, "users.json")}
}

func (r *UserRepository) load() []models.User {
	data, err := os.ReadFile(r.path)
	if err != nil || len(data) == 0 {
		return nil
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil
	}
	return users
}

func (r *UserRepository) save(users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

// FindByUsername returns the user with the given username, or ErrUserNotFound.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	for _, u := range r.load() {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// FindByID returns the user with the given id, or ErrUserNotFound.
func (r *UserRepository) FindByID(id string) (models.User, error) {
	for _, u := range r.load() {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// Insert appends a new user. The caller is responsible for uniqueness checks.
func (r *UserRepository) Insert(user models.User) error {
	return r.save(append(r.load(), user))
}

package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"photovault/models"
	"photovault/store"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("all fields are required")
	ErrNameTooShort       = errors.New("name is too short")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
)

const bcryptCost = 10

type UserService struct {
	users *store.UserStore
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: store.NewUserStore(db)}
}

// Register creates a user with a hashed password. The duplicate check runs
// before insertion; the unique index backstops races.
func (s *UserService) Register(email, name, password string) (*models.User, error) {
	if email == "" || name == "" || password == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.users.Insert(email, name, string(hash))
}

// Authenticate resolves email+password to a user, or ErrInvalidCredentials.
// Unknown user and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.users.GetByID(id)
}

// UpdateName changes the display name only.
func (s *UserService) UpdateName(userID uint, name string) error {
	if len(name) < 2 {
		return ErrNameTooShort
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.Name = name
	return s.users.Update(user)
}

// UpdateProfile edits name and email, and optionally rotates the password.
// Setting a new password requires the current one to match.
func (s *UserService) UpdateProfile(userID uint, name, email, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if newPassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
			return ErrWrongPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
		if err != nil {
			return err
		}
		user.Password = string(hash)
	}

	if name != "" {
		user.Name = name
	}
	if email != "" && email != user.Email {
		other, err := s.users.GetByEmail(email)
		if err != nil {
			return err
		}
		if other != nil {
			return ErrUserExists
		}
		user.Email = email
	}

	return s.users.Update(user)
}

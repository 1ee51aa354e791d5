package services

import (
	"fmt"
	"time"

	"github.com/botboss/botboss-api/internal/dtos"
	"github.com/botboss/botboss-api/internal/models"
	"github.com/botboss/botboss-api/internal/store"
)

type UserService struct {
	Store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{Store: s}
}

// Signup registers a seeker or a company account. Emails are unique across
// both roles.
func (s *UserService) Signup(req dtos.SignupRequest) (models.User, error) {
	if req.Role != models.RoleSeeker && req.Role != models.RoleCompany {
		return models.User{}, fmt.Errorf("%w: role must be %q or %q", ErrBadRequest, models.RoleSeeker, models.RoleCompany)
	}
	if req.Role == models.RoleCompany && req.CompanyName == "" {
		return models.User{}, fmt.Errorf("%w: companyName is required for company accounts", ErrBadRequest)
	}

	users, err := s.Store.Users()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == req.Email {
			return models.User{}, fmt.Errorf("%w: email already registered", ErrConflict)
		}
	}

	now := time.Now()
	user := models.User{
		ID:        fmt.Sprintf("user_%s_%d", now.Format("20060102150405"), len(users)+1),
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		CreatedAt: now,
	}
	if req.Role == models.RoleCompany {
		user.CompanyName = req.CompanyName
		user.Website = req.Website
	}

	users = append(users, user)
	if err := s.Store.SaveUsers(users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Login(email, password string) (models.User, error) {
	users, err := s.Store.Users()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// List returns every user with passwords stripped.
func (s *UserService) List() ([]models.User, error) {
	users, err := s.Store.Users()
	if err != nil {
		return nil, err
	}
	safe := make([]models.User, 0, len(users))
	for _, u := range users {
		safe = append(safe, u.Sanitized())
	}
	return safe, nil
}

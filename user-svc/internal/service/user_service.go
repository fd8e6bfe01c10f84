package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"quickbite/auth"
	"quickbite/user-svc/internal/domain"
)

var (
	ErrValidation         = errors.New("name, email and password are required")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("unknown role")
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func validRole(role string) bool {
	switch role {
	case auth.RoleCustomer, auth.RoleAdmin, auth.RoleRestaurant:
		return true
	}
	return false
}

func (s *UserService) Register(req domain.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if name == "" || email == "" || req.Password == "" {
		return nil, ErrValidation
	}

	role := req.Role
	if role == "" {
		role = auth.RoleCustomer
	}
	if !validRole(role) {
		return nil, ErrInvalidRole
	}

	if _, err := s.repo.GetUserByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(req domain.LoginRequest) (*domain.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &domain.LoginResponse{User: *user, Token: token}, nil
}

func (s *UserService) List() ([]domain.User, error) {
	return s.repo.ListUsers()
}

func (s *UserService) Update(user *domain.User) error {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" {
		return ErrValidation
	}
	if !validRole(user.Role) {
		return ErrInvalidRole
	}
	return s.repo.UpdateUser(user)
}

func (s *UserService) Delete(id int) (int64, error) {
	return s.repo.DeleteUser(id)
}

package service

import "quickbite/user-svc/internal/domain"

type UserServiceInterface interface {
	Register(req domain.RegisterRequest) (*domain.User, error)
	Login(req domain.LoginRequest) (*domain.LoginResponse, error)
	List() ([]domain.User, error)
	Update(user *domain.User) error
	Delete(id int) (int64, error)
}

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	UpdateUser(user *domain.User) error
	DeleteUser(id int) (int64, error)
}

var _ UserServiceInterface = (*UserService)(nil)

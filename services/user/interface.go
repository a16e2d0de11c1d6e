package user

import (
	userRepo "hudumahub/database/repository/user"
	"hudumahub/models"
)

// AuthSession is returned on successful registration or sign-in.
type AuthSession struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService defines customer account operations.
type UserService interface {
	Register(name, email, password, phone string) (*AuthSession, error)
	Authenticate(email, password string) (*AuthSession, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(user models.User) (*models.User, error)
	UpdateFCMToken(userID, token string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpatel-116/uniclash/internal/user"
)

// AuthRepository covers the user lookups the auth flows need.
type AuthRepository interface {
	GetUserByEmail(email string) (*user.User, error)
	CreateUser(u *user.User) error
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

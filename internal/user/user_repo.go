package user

import (
	"errors"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetUserByID(id uint) (*User, error)
	GetUserByEmail(email string) (*User, error)
	SearchUsers(searchTerm string) ([]User, error)
	CreateUser(u *User) error
	UpdateUserRole(id uint, role Role) error
	DeleteUserWithMembership(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetUserByEmail(email string) (*User, error) {
	var u User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) SearchUsers(searchTerm string) ([]User, error) {
	var users []User
	query := r.db.Model(&User{})
	if searchTerm != "" {
		pattern := "%" + searchTerm + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if err := query.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CreateUser(u *User) error {
	return r.db.Create(u).Error
}

func (r *userRepository) UpdateUserRole(id uint, role Role) error {
	return r.db.Model(&User{}).Where("id = ?", id).Update("role", role).Error
}

// DeleteUserWithMembership removes the user and detaches any team membership
// in one transaction, so a half-deleted account never survives a failure.
func (r *userRepository) DeleteUserWithMembership(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM players WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, id).Error
	})
}

package university

import (
	"errors"

	"gorm.io/gorm"
)

// UniversityRepository defines the interface for university data operations.
type UniversityRepository interface {
	GetAll() ([]University, error)
	GetByID(id uint) (*University, error)
	GetByName(name string) (*University, error)
	Search(searchTerm string) ([]University, error)
	Create(u *University) error
	Update(u *University) error
	Delete(id uint) error
}

type universityRepository struct {
	db *gorm.DB
}

// NewUniversityRepository creates a new instance of UniversityRepository.
func NewUniversityRepository(db *gorm.DB) UniversityRepository {
	return &universityRepository{db: db}
}

func (r *universityRepository) GetAll() ([]University, error) {
	var universities []University
	if err := r.db.Order("name asc").Find(&universities).Error; err != nil {
		return nil, err
	}
	return universities, nil
}

func (r *universityRepository) GetByID(id uint) (*University, error) {
	var u University
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *universityRepository) GetByName(name string) (*University, error) {
	var u University
	if err := r.db.Where("name = ?", name).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *universityRepository) Search(searchTerm string) ([]University, error) {
	var universities []University
	query := r.db.Model(&University{})
	if searchTerm != "" {
		query = query.Where("name ILIKE ?", "%"+searchTerm+"%")
	}
	if err := query.Order("name asc").Find(&universities).Error; err != nil {
		return nil, err
	}
	return universities, nil
}

func (r *universityRepository) Create(u *University) error {
	return r.db.Create(u).Error
}

func (r *universityRepository) Update(u *University) error {
	return r.db.Save(u).Error
}

func (r *universityRepository) Delete(id uint) error {
	return r.db.Delete(&University{}, id).Error
}

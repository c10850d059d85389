package tournament

import (
	"gorm.io/gorm"

	"github.com/rpatel-116/uniclash/internal/user"
)

// TournamentRepository defines the interface for tournament and registration
// data operations.
type TournamentRepository interface {
	CreateTournament(t *Tournament) error
	GetAllTournaments() ([]Tournament, error)
	GetUserTeamID(userID uint) (*uint, error)
	CreateRegistration(reg *Registration) error
	CanCancelRegistration(tournamentID, userID uint) (bool, error)
	DeleteRegistration(tournamentID, userID uint) error
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new instance of TournamentRepository.
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) CreateTournament(t *Tournament) error {
	return r.db.Create(t).Error
}

func (r *tournamentRepository) GetAllTournaments() ([]Tournament, error) {
	var tournaments []Tournament
	if err := r.db.Order("start_date asc").Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *tournamentRepository) GetUserTeamID(userID uint) (*uint, error) {
	var u user.User
	if err := r.db.Select("team_id").First(&u, userID).Error; err != nil {
		return nil, err
	}
	return u.TeamID, nil
}

func (r *tournamentRepository) CreateRegistration(reg *Registration) error {
	return r.db.Create(reg).Error
}

// cancelScope matches the registrations the caller may cancel: their own, or
// a team registration made by one of their teammates. Soft-deleted rows never
// confer cancellation rights.
func (r *tournamentRepository) cancelScope(tournamentID, userID uint) *gorm.DB {
	teammateRegistrant := r.db.Table("registrations").
		Select("user_id").
		Where("tournament_id = ? AND deleted_at IS NULL AND team_id IN (SELECT team_id FROM users WHERE id = ? AND deleted_at IS NULL)", tournamentID, userID).
		Limit(1)

	return r.db.Model(&Registration{}).
		Where("tournament_id = ?", tournamentID).
		Where("user_id = ? OR (team_id IS NOT NULL AND user_id = (?))", userID, teammateRegistrant)
}

func (r *tournamentRepository) CanCancelRegistration(tournamentID, userID uint) (bool, error) {
	var count int64
	if err := r.cancelScope(tournamentID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tournamentRepository) DeleteRegistration(tournamentID, userID uint) error {
	return r.cancelScope(tournamentID, userID).Delete(&Registration{}).Error
}

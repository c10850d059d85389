package team

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpatel-116/uniclash/internal/user"
)

// TeamRepository defines the interface for team and roster data operations.
type TeamRepository interface {
	CreateTeam(t *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetAllTeams() ([]TeamRow, error)
	SearchTeams(query string) ([]TeamRow, error)
	GetTeamMembers(teamID uint) ([]MemberRow, error)
	GetCollegeRoster(collegeName string) ([]CollegeRosterRow, error)
	EditTeam(teamID uint, req EditTeamRequest) error
	DeleteTeam(id uint) error
	LeaveTeam(userID uint) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(t *Team) error {
	return r.db.Create(t).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var t Team
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetAllTeams() ([]TeamRow, error) {
	var rows []TeamRow
	err := r.db.Table("teams t").
		Select("t.id AS team_id, t.name, t.university_id, u.name AS university_name, t.created_at AS created_date").
		Joins("JOIN universities u ON t.university_id = u.id").
		Where("t.deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *teamRepository) SearchTeams(query string) ([]TeamRow, error) {
	var rows []TeamRow
	pattern := "%" + query + "%"
	err := r.db.Table("teams t").
		Select("t.id AS team_id, t.name, t.university_id, u.name AS university_name, t.created_at AS created_date").
		Joins("JOIN universities u ON t.university_id = u.id").
		Where("t.deleted_at IS NULL AND (t.name ILIKE ? OR u.name ILIKE ?)", pattern, pattern).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *teamRepository) GetTeamMembers(teamID uint) ([]MemberRow, error) {
	var rows []MemberRow
	err := r.db.Table("users u").
		Select("u.id AS user_id, u.name, p.role").
		Joins("JOIN players p ON u.id = p.user_id").
		Where("p.team_id = ? AND p.deleted_at IS NULL", teamID).
		Order("p.role DESC, u.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *teamRepository) GetCollegeRoster(collegeName string) ([]CollegeRosterRow, error) {
	var rows []CollegeRosterRow
	err := r.db.Table("teams t").
		Select("t.name, t.id AS team_id, p.user_id, u1.name AS player_name, p.image_url, p.role").
		Joins("JOIN universities u2 ON t.university_id = u2.id").
		Joins("LEFT JOIN players p ON t.id = p.team_id AND p.deleted_at IS NULL").
		Joins("LEFT JOIN users u1 ON p.user_id = u1.id").
		Where("u2.name = ? AND t.deleted_at IS NULL", collegeName).
		Order("t.id, p.role DESC, u1.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// EditTeam applies the composite roster edit in one transaction: field
// updates, leader reassignment (demote everyone, then promote the designee so
// exactly one Leader survives), and member removal with the removed user's
// global role reset to User. Any failure rolls the whole edit back.
func (r *teamRepository) EditTeam(teamID uint, req EditTeamRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Name != "" {
			updates["name"] = req.Name
		}
		if req.UniversityID != 0 {
			updates["university_id"] = req.UniversityID
		}
		if len(updates) > 0 {
			if err := tx.Model(&Team{}).Where("id = ?", teamID).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.NewLeaderID != nil {
			if err := tx.Model(&Player{}).Where("team_id = ?", teamID).
				Update("role", RoleMember).Error; err != nil {
				return err
			}
			if err := tx.Model(&Player{}).Where("user_id = ? AND team_id = ?", *req.NewLeaderID, teamID).
				Update("role", RoleLeader).Error; err != nil {
				return err
			}
		}

		if req.MemberToDeleteID != nil {
			if err := tx.Where("user_id = ? AND team_id = ?", *req.MemberToDeleteID, teamID).
				Delete(&Player{}).Error; err != nil {
				return err
			}
			// team-scoped roles have no meaning off a roster
			if err := tx.Model(&user.User{}).Where("id = ?", *req.MemberToDeleteID).
				Updates(map[string]interface{}{"role": user.RoleUser, "team_id": nil}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteTeam removes the team row only. Membership rows and registrations
// are left in place; admin tooling compensates for the orphans.
func (r *teamRepository) DeleteTeam(id uint) error {
	return r.db.Delete(&Team{}, id).Error
}

// LeaveTeam clears the caller's team affiliation and drops them back to the
// baseline User role. Leadership is not reassigned here.
func (r *teamRepository) LeaveTeam(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&Player{}).Error; err != nil {
			return err
		}
		return tx.Model(&user.User{}).Where("id = ?", userID).
			Updates(map[string]interface{}{"team_id": nil, "role": user.RoleUser}).Error
	})
}

package match

import (
	"errors"

	"gorm.io/gorm"
)

// ErrMatchNotFound is returned when a result references a missing match.
var ErrMatchNotFound = errors.New("match not found")

// MatchRepository defines the interface for match, schedule and report data
// operations.
type MatchRepository interface {
	GetAllMatches() ([]Match, error)
	GetSchedules(limit, offset int) ([]ScheduleRow, error)
	CreateSchedule(s *Schedule) error
	PostResult(matchID uint, score1, score2 int) error
	GetStandings() ([]StandingRow, error)
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) GetAllMatches() ([]Match, error) {
	var matches []Match
	if err := r.db.Order("id asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

// scheduleQuery builds the joined schedule listing; split out so the generated
// SQL can be inspected.
func (r *matchRepository) scheduleQuery(limit, offset int) *gorm.DB {
	return r.db.Table("schedules s").
		Select("s.id AS schedule_id, m.id AS match_id, m.team1_id, m.team2_id, t1.name AS team1_name, t2.name AS team2_name, s.scheduled_date").
		Joins("JOIN matches m ON s.match_id = m.id").
		Joins("JOIN teams t1 ON m.team1_id = t1.id").
		Joins("JOIN teams t2 ON m.team2_id = t2.id").
		Where("s.deleted_at IS NULL AND m.deleted_at IS NULL").
		Order("s.scheduled_date ASC").
		Limit(limit).
		Offset(offset)
}

func (r *matchRepository) GetSchedules(limit, offset int) ([]ScheduleRow, error) {
	var rows []ScheduleRow
	if err := r.scheduleQuery(limit, offset).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *matchRepository) CreateSchedule(s *Schedule) error {
	return r.db.Create(s).Error
}

// PostResult persists scores and the derived winner in a single UPDATE. The
// winner always comes from the match's own stored team references.
func (r *matchRepository) PostResult(matchID uint, score1, score2 int) error {
	var m Match
	if err := r.db.First(&m, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMatchNotFound
		}
		return err
	}

	return r.db.Model(&Match{}).Where("id = ?", matchID).
		Updates(map[string]interface{}{
			"score_team1": score1,
			"score_team2": score2,
			"winner_id":   DeriveWinner(&m, score1, score2),
		}).Error
}

// GetStandings aggregates matches played and won per team for the CSV report.
func (r *matchRepository) GetStandings() ([]StandingRow, error) {
	var rows []StandingRow
	err := r.db.Table("teams t").
		Select("t.name AS team_name, u.name AS university_name, COUNT(m.id) AS matches_played, COALESCE(SUM(CASE WHEN m.winner_id = t.id THEN 1 ELSE 0 END), 0) AS wins").
		Joins("JOIN universities u ON t.university_id = u.id").
		Joins("LEFT JOIN matches m ON (m.team1_id = t.id OR m.team2_id = t.id)").
		Where("t.deleted_at IS NULL").
		Group("t.id, t.name, u.name").
		Order("wins DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

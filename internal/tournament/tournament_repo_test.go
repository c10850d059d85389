package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestCancelScopeIgnoresCancelledRows(t *testing.T) {
	r := &tournamentRepository{db: dryRunDB(t)}

	stmt := r.cancelScope(4, 7).Find(&[]Registration{}).Statement
	sql := stmt.SQL.String()

	// the teammate subquery must not let an already-cancelled registration, or
	// a deleted user's membership, confer cancellation rights
	assert.Contains(t, sql, "tournament_id = ? AND deleted_at IS NULL AND team_id IN (SELECT team_id FROM users WHERE id = ? AND deleted_at IS NULL)")
	assert.Equal(t, []interface{}{uint(4), uint(7), uint(4), uint(7)}, stmt.Vars)
}

package role

// Role is the privilege level attached to a user account. Roles are mutually
// exclusive; a user holds exactly one at a time.
type Role string

const (
	RoleUser       Role = "User"
	RolePlayer     Role = "Player"
	RoleCollegeRep Role = "CollegeRep"
	RoleModerator  Role = "Moderator"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

var roleRank = map[Role]int{
	RoleUser:       0,
	RolePlayer:     1,
	RoleCollegeRep: 2,
	RoleModerator:  3,
	RoleAdmin:      4,
	RoleSuperAdmin: 5,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Rank returns the privilege rank of the role. Higher means more privileged.
// Unknown roles rank below User.
func (r Role) Rank() int {
	rank, ok := roleRank[r]
	if !ok {
		return -1
	}
	return rank
}

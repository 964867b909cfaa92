package domain

// Role is the closed set of caller roles the upstream auth layer can supply.
type Role string

const (
	RoleAdmin           Role = "Admin"
	RoleAssociate       Role = "Associate"
	RoleCustomer        Role = "Customer"
	RoleProjectManager  Role = "ProjectManager"
	RoleActivityManager Role = "ActivityManager"
	RoleWorker          Role = "Worker"
)

// Identity is the caller identity attached to every request by the upstream
// auth gateway. A zero Identity means an anonymous caller.
type Identity struct {
	UserID string
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

// Owns reports whether the caller is the associate that owns the given record.
func (i Identity) Owns(associateID string) bool {
	return i.Role == RoleAssociate && i.UserID != "" && i.UserID == associateID
}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleAssociate, RoleCustomer, RoleProjectManager, RoleActivityManager, RoleWorker:
		return Role(s), true
	}
	return "", false
}

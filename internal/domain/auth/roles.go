package auth

const (
	RoleHR      = "hr"
	RoleManager = "manager"
)

// DashboardRoles may read hire-quality dashboards and record hires.
var DashboardRoles = []string{RoleHR, RoleManager}

type UserContext struct {
	UserID   string
	RoleName string
}

func HasRole(user UserContext, roles ...string) bool {
	for _, role := range roles {
		if user.RoleName == role {
			return true
		}
	}
	return false
}

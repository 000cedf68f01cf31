package authz

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleBarber Role = "barber"
	RoleClient Role = "client"
)

type Permission string

const (
	PermViewCatalog      Permission = "catalog:view"
	PermBookAppointment  Permission = "appointment:book"
	PermViewOwnBookings  Permission = "appointment:view_own"
	PermManageAgenda     Permission = "agenda:manage"
	PermManageSchedule   Permission = "schedule:manage"
	PermViewBarberStats  Permission = "stats:view"
	PermViewAuditLogs    Permission = "audit:view"
	PermManageOwnProfile Permission = "profile:manage"
)

var grants = map[Role][]Permission{
	RoleClient: {
		PermViewCatalog,
		PermBookAppointment,
		PermViewOwnBookings,
		PermManageOwnProfile,
	},
	RoleBarber: {
		PermViewCatalog,
		PermManageAgenda,
		PermManageSchedule,
		PermViewBarberStats,
		PermManageOwnProfile,
	},
	RoleOwner: {
		PermViewCatalog,
		PermManageOwnProfile,
	},
}

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleOwner, RoleBarber, RoleClient:
		return r, true
	}
	return "", false
}

// Can reports whether role holds perm. Admins hold every permission.
func Can(role Role, perm Permission) bool {
	if role == RoleAdmin {
		return true
	}
	for _, p := range grants[role] {
		if p == perm {
			return true
		}
	}
	return false
}

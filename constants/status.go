package constants

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// User role
const (
	RoleStaff        = 0
	RoleSuperAdmin   = 1
	RoleOwner        = 2
	RoleReceptionist = 3
)

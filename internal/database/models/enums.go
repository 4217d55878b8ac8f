package models

// UserRole is the role a user holds inside its company
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleStaff UserRole = "staff"
)

// UserStatus is the approval state of a user
type UserStatus string

const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleStaff:
		return true
	}
	return false
}

// IsValid checks if the UserStatus is valid
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusActive:
		return true
	}
	return false
}

// RoleForExistingUsers returns the role of a new user given how many users the
// company already has. The first user of a company becomes its admin.
func RoleForExistingUsers(count int64) UserRole {
	if count == 0 {
		return UserRoleAdmin
	}
	return UserRoleStaff
}

// InitialStatus returns the status a freshly registered user starts in.
// Admins approve themselves; everyone else waits for an admin.
func InitialStatus(role UserRole) UserStatus {
	if role == UserRoleAdmin {
		return UserStatusActive
	}
	return UserStatusPending
}

package user

import "time"

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role"`
	PINHash   string    `gorm:"column:pin_hash;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// CanViewStats reports whether a role may see absence percentages and reports.
func CanViewStats(role string) bool {
	return role == RoleAdmin || role == RoleOwner
}

// CanManageUsers covers user creation and PIN resets.
func CanManageUsers(role string) bool {
	return role == RoleAdmin || role == RoleOwner
}

// CanChangeRoles covers role changes and user deletion.
func CanChangeRoles(role string) bool {
	return role == RoleOwner
}

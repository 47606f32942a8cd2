package entities

import "time"

type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

type Role string

const (
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
	RoleUnknown  Role = "unknown"
)

func ToRole(s string) (Role, error) {
	switch s {
	case string(RoleHR):
		return RoleHR, nil
	case string(RoleEmployee):
		return RoleEmployee, nil
	case string(RoleUnknown), "":
		return RoleUnknown, nil
	default:
		return "", errInvalidRole
	}
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;uniqueIndex"`
	PasswordHash string
	Sex          Sex  `gorm:"size:1;default:m"`
	Role         Role `gorm:"size:8;default:unknown"`
	CreatedAt    time.Time
}

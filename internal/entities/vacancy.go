package entities

import (
	"errors"
	"time"
)

var (
	errInvalidStatus = errors.New("invalid vacancy status")
	errInvalidRole   = errors.New("invalid user role")
)

type VacancyStatus string

const (
	StatusDraft  VacancyStatus = "draft"
	StatusOpen   VacancyStatus = "open"
	StatusClosed VacancyStatus = "closed"
)

func ToVacancyStatus(s string) (VacancyStatus, error) {
	switch s {
	case string(StatusDraft):
		return StatusDraft, nil
	case string(StatusOpen):
		return StatusOpen, nil
	case string(StatusClosed):
		return StatusClosed, nil
	default:
		return "", errInvalidStatus
	}
}

// Vacancy is the central record. Slug is unique across the whole table,
// the owner is set at creation and never reassigned, Likes only changes
// through the atomic increment in the repository.
type Vacancy struct {
	ID      uint `gorm:"primaryKey"`
	UserID  uint
	User    User
	Text    string
	Slug    string        `gorm:"size:50;uniqueIndex"`
	Status  VacancyStatus `gorm:"size:6"`
	Created time.Time
	Likes   int     `gorm:"default:0"`
	Skills  []Skill `gorm:"many2many:vacancy_skills"`
}

// SkillNames returns the associated skill names as plain strings, the
// shape every rendering of a vacancy uses.
func (v Vacancy) SkillNames() []string {
	names := make([]string, 0, len(v.Skills))
	for _, skill := range v.Skills {
		names = append(names, skill.Name)
	}
	return names
}

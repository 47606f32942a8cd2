package entities

import "time"

// Skill is a reference tag attachable to vacancies. Rows are created on
// first mention of a name and are never removed by the vacancy pipelines.
type Skill struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex"`
	IsActive  bool   `gorm:"default:true"`
	CreatedAt time.Time
}

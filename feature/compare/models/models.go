// Package models defines the persistence and transport models of the compare
// feature.
package models

import "time"

// CompareRun is one recorded comparison, persisted in the compare_runs table.
type CompareRun struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	LeftName    string    `gorm:"column:left_name" json:"left_name"`
	RightName   string    `gorm:"column:right_name" json:"right_name"`
	Strategy    string    `gorm:"column:strategy" json:"strategy"`
	LeftRows    int       `gorm:"column:left_rows" json:"left_rows"`
	RightRows   int       `gorm:"column:right_rows" json:"right_rows"`
	Differences int       `gorm:"column:differences" json:"differences"`
	Failures    int       `gorm:"column:failures" json:"failures"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name.
func (CompareRun) TableName() string {
	return "compare_runs"
}

// Package models defines the shared data types for lumen.
package models

import "time"

// BuildRecord describes one completed site build.
type BuildRecord struct {
	ID         string
	ThemeID    string
	OutputHash string
	PageCount  int
	ThemeCount int
	Duration   time.Duration
	CreatedAt  time.Time
}

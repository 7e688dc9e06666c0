package entity

import "time"

// Learning is one journal entry for a specific calendar day.
// At most one learning exists per (UserID, Date); the store enforces it.
type Learning struct {
	ID        string
	UserID    string
	Learning  string
	Date      time.Time // calendar date, time component zeroed
	CreatedAt time.Time
}

// MaxLearningLength bounds the free-text content of an entry.
const MaxLearningLength = 280

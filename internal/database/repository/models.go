package repository

import "time"

// Setting represents a settings row: one durable key-value slot.
type Setting struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

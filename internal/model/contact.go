package model

import "time"

// Contact is the single entity of the application. ID and CreatedAt are
// assigned by the database and never change after creation.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// Sort keys accepted by ContactListOptions. Anything else falls back to
// SortNewest.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortName   = "name"
	SortEmail  = "email"
)

// ContactListOptions carries search and ordering parameters for listing contacts.
type ContactListOptions struct {
	// Search matches case-insensitively as a substring against name,
	// email, phone or notes. Empty returns all rows.
	Search string
	// Sort is one of the Sort* constants.
	Sort string
}

// Package models holds the persisted server-side entities.
package models

import "time"

// User is a registered identity. Name and email are globally unique;
// PasswordHash is a self-describing bcrypt hash and never leaves the server.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Bio          string
	CreatedAt    time.Time
}

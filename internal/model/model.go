// Package model defines domain entities used by services and repositories.
package model

import "time"

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Movie is a catalog record. UserID references the creator.
type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Duration    int       `json:"duration"` // minutes
	Rating      float64   `json:"rating"`   // 0.0..5.0
	Description string    `json:"description"`
	PosterURL   string    `json:"poster_url"`
	IsNew       bool      `json:"is_new"`
	ViewsCount  int64     `json:"views_count"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      int64     `json:"user_id"`
}

// MovieInput carries the client-supplied fields for creating a movie.
type MovieInput struct {
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Duration    int     `json:"duration"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	PosterURL   string  `json:"poster_url"`
	IsNew       bool    `json:"is_new"`
}

// Tokens collects an issued access token.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}

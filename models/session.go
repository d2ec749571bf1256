package models

import "time"

// Session is the explicit session-state object created at login and cleared
// at logout. It replaces ambient browser storage: components receive it,
// they never read it from a global.
type Session struct {
	UserID           int64     `json:"user_id"`
	Username         string    `json:"username"`
	Token            string    `json:"token"`
	ProfileImagePath string    `json:"profile_image_path"`
	At               time.Time `json:"at"`
}

// Credentials is the POST /login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordUpdate is the PUT /api/user/{id} request body used by the profile
// screen.
type PasswordUpdate struct {
	UserID           int64  `json:"userId"`
	NewPassword      string `json:"newPassword"`
	ProfileImagePath string `json:"profileImageUrl"`
}

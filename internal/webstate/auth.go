package webstate

import "github.com/URTS404/UMKM-AWP-UAS/internal/models"

// AuthSession is the visitor's login state as the web pages see it: the
// bearer token plus the identity claims shown in the UI.
type AuthSession struct {
	Token  string      `json:"token"`
	UserID uint        `json:"user_id"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Role   models.Role `json:"role"`
}

func (a *AuthSession) LoggedIn() bool {
	return a.Token != ""
}

func (a *AuthSession) IsAdmin() bool {
	return a.LoggedIn() && a.Role == models.RoleAdmin
}

// Login records a fresh token + identity
func (a *AuthSession) Login(token string, userID uint, email, name string, role models.Role) {
	a.Token = token
	a.UserID = userID
	a.Email = email
	a.Name = name
	a.Role = role
}

// Logout drops everything
func (a *AuthSession) Logout() {
	*a = AuthSession{}
}

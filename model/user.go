package model

import (
	"strings"
	"time"

	"github.com/muhammadheryan/el-rastro/constant"
)

type Location struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// User mirrors the user service record. Username may carry a "#xxxxx" discriminator.
type User struct {
	ID       string    `json:"_id" validate:"required"`
	Username string    `json:"username"`
	Image    string    `json:"image,omitempty"`
	Location *Location `json:"location,omitempty" validate:"omitempty"`
}

// DisplayName strips the discriminator suffix from the username.
func (u User) DisplayName() string {
	return DisplayName(u.Username)
}

func DisplayName(username string) string {
	name, _, _ := strings.Cut(username, constant.UsernameDiscriminator)
	return name
}

func AnonymousUser() User {
	return User{ID: constant.AnonymousUserID, Username: constant.AnonymousUsername}
}

// Session is the authenticated identity of a viewer, threaded explicitly through every call.
type Session struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ViewerID returns the user id of the session, empty for anonymous viewers.
func (s *Session) ViewerID() string {
	if s == nil {
		return ""
	}
	return s.UserID
}

// Token returns the access token, empty when absent.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.AccessToken
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type LoginResponse struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenExchangeResponse is returned by the auth service for POST /api/v1/auth/jwt.
type TokenExchangeResponse struct {
	JWT string `json:"jwt" validate:"required"`
	ID  string `json:"id" validate:"required"`
}

type UpdateUsernameRequest struct {
	Username string `json:"username" validate:"required,max=64"`
}

type UpdateLocationRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

type ProfileView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PhotoURL      string   `json:"photo_url"`
	Ratings       []Rating `json:"ratings"`
	AverageRating float64  `json:"average_rating"`
	IsSelf        bool     `json:"is_self"`
}

// UserUpdate is the body of PUT /api/v1/user/{id}; nil fields are left untouched.
type UserUpdate struct {
	Username string    `json:"username,omitempty"`
	Location *Location `json:"location,omitempty"`
}

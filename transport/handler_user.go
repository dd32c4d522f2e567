package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/el-rastro/model"
	utilsContext "github.com/muhammadheryan/el-rastro/utils/context"
)

// Login handler
// @Summary Open a session
// @Description Exchange username and email for a backend token and open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} transport.Response
// @Router /api/auth/session [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    res.SessionID,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeSuccess(w, res)
}

// Logout handler
// @Summary Close the session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.Response
// @Failure 401 {object} transport.Response
// @Router /api/auth/session [delete]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.UserApp.Logout(ctx, utilsContext.GetSession(ctx)); err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeSuccess(w, nil)
}

// GetProfile handler
// @Summary User profile
// @Description Profile with photo and ratings; failed lookups fall back to defaults
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.ProfileView
// @Router /api/users/{id}/profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.UserApp.GetProfile(ctx, utilsContext.GetSession(ctx), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateUsername handler
// @Summary Change username
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateUsernameRequest true "Username"
// @Success 200 {object} model.User
// @Failure 400 {object} transport.Response
// @Router /api/users/me/username [put]
func (s *RestHandler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateUsernameRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateUsername(ctx, utilsContext.GetSession(ctx), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateLocation handler
// @Summary Change location
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateLocationRequest true "Location"
// @Success 200 {object} model.User
// @Failure 400 {object} transport.Response
// @Router /api/users/me/location [put]
func (s *RestHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateLocationRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateLocation(ctx, utilsContext.GetSession(ctx), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

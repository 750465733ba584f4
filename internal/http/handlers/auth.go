package handlers

import (
	"net/http"
	"time"

	"euroasia/internal/app"
	"euroasia/internal/domain/session"
	"euroasia/internal/http/middleware"
	"euroasia/internal/http/response"
)

type AuthHandler struct {
	auth         *app.AuthService
	cookieSecure bool
}

func NewAuthHandler(auth *app.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	sess, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	response.JSON(w, http.StatusOK, statusResponse{Success: true, Message: "login successful"})
}

func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ok := h.auth.Check(r.Context(), middleware.TokenFromRequest(r))
	response.JSON(w, http.StatusOK, map[string]bool{"authenticated": ok})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), middleware.TokenFromRequest(r)); err != nil {
		response.Error(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	response.JSON(w, http.StatusOK, statusResponse{Success: true, Message: "logged out"})
}

package handler

import (
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"

	"clinic_booking/internal/middleware"
	"clinic_booking/internal/model"
	"clinic_booking/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// ShowRegisterForm renders the minimal registration page
func (h *AuthHandler) ShowRegisterForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(registerPage("")))
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	gender := c.PostForm("gender")

	if username == "" || email == "" || password == "" {
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte(registerPage("username, email and password are required")))
		return
	}

	_, err := h.service.Register(c.Request.Context(), username, email, password, gender)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.Data(http.StatusConflict, "text/html; charset=utf-8", []byte(registerPage(err.Error())))
			return
		}
		log.Printf("Error during registration: %v", err)
		c.String(http.StatusInternalServerError, "Failed to register")
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLoginForm renders the minimal login page
func (h *AuthHandler) ShowLoginForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginPage("")))
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, token, err := h.service.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Re-render the form with a visible message; no session is set.
			c.Data(http.StatusUnauthorized, "text/html; charset=utf-8", []byte(loginPage(err.Error())))
			return
		}
		log.Printf("Error during login: %v", err)
		c.String(http.StatusInternalServerError, "Failed to login")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)

	switch user.Role {
	case model.RoleAdmin:
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	case model.RoleDoctor:
		c.Redirect(http.StatusSeeOther, "/doctor/dashboard")
	default:
		c.Redirect(http.StatusSeeOther, "/patient/dashboard")
	}
}

// Logout clears the session cookie unconditionally. Calling it without a
// session is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

// RegisterAuthRoutes registers the unauthenticated routes
func (h *AuthHandler) RegisterAuthRoutes(r gin.IRouter, rateLimitMW gin.HandlerFunc) {
	r.GET("/register", h.ShowRegisterForm)
	r.POST("/register", rateLimitMW, h.Register)
	r.GET("/login", h.ShowLoginForm)
	r.POST("/login", rateLimitMW, h.Login)
	r.GET("/logout", h.Logout)
}

// Real templating lives outside this service; these pages are the minimum
// needed to drive the form posts.

func registerPage(errMsg string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html><body><h1>Register</h1>%s
<form method="post" action="/register">
<input name="username" placeholder="username">
<input name="email" placeholder="email">
<input name="password" type="password" placeholder="password">
<input name="gender" placeholder="gender">
<button type="submit">Register</button>
</form></body></html>`, errBanner(errMsg))
}

func loginPage(errMsg string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html><body><h1>Login</h1>%s
<form method="post" action="/login">
<input name="email" placeholder="email">
<input name="password" type="password" placeholder="password">
<button type="submit">Login</button>
</form></body></html>`, errBanner(errMsg))
}

func errBanner(msg string) string {
	if msg == "" {
		return ""
	}
	return "<p>" + html.EscapeString(msg) + "</p>"
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"notely/internal/domain/entity"
	repo "notely/internal/domain/repository"
	"notely/pkg/helpers"
)

type AuthHandler struct {
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Users: users, JWT: jwt, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

func (h *AuthHandler) logErr(c *gin.Context, msg string, err error) {
	if h.Logger == nil {
		return
	}
	h.Logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.Request.URL.Path,
	}).WithError(err).Error(msg)
}

type registerRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	Age      int    `form:"age" binding:"required"`
}

type loginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ShowLogin renders the login page. GET /, /login and /register all land here.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Success GET /succes renders the post-registration welcome page from the
// token claims, or clears the cookie and bounces to login.
func (h *AuthHandler) Success(c *gin.Context) {
	token, err := c.Cookie(helpers.TokenCookie)
	if err != nil || token == "" {
		h.Cookies.Clear(c)
		c.Redirect(http.StatusFound, "/login")
		return
	}
	claims, err := h.JWT.Parse(token)
	if err != nil {
		h.Cookies.Clear(c)
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "succes.html", gin.H{"User": claims})
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "All fields are required!")
		return
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		h.logErr(c, "password hash failed", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	u := &entity.User{Username: req.Username, Email: req.Email, Password: hash, Age: req.Age}
	if err := h.Users.Create(u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			c.String(http.StatusBadRequest, "User already exists")
			return
		}
		h.logErr(c, "create user failed", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	// Registration tokens carry the full profile claims.
	token, exp, err := h.JWT.Generate(helpers.Claims{
		Email:    u.Email,
		UserID:   u.ID,
		Username: u.Username,
		Age:      u.Age,
	})
	if err != nil {
		h.logErr(c, "token generation failed", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	h.Cookies.Set(c, token, exp)
	c.Redirect(http.StatusFound, "/succes")
}

// Login POST /login. Every credential failure yields the same generic body so
// nothing leaks about which field was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid email or password")
		return
	}

	u, err := h.Users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.String(http.StatusBadRequest, "Invalid email or password")
			return
		}
		h.logErr(c, "login lookup failed", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	if !helpers.CompareHashAndPassword(u.Password, req.Password) {
		c.String(http.StatusBadRequest, "Invalid email or password")
		return
	}

	token, exp, err := h.JWT.Generate(helpers.Claims{Email: u.Email, UserID: u.ID})
	if err != nil {
		h.logErr(c, "token generation failed", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Cookies.Set(c, token, exp)
	c.Redirect(http.StatusFound, "/profile")
}

// Logout GET /logout. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}

// NotFound is the catch-all for unmatched routes.
func NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "404 - Page not found")
}

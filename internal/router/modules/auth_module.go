package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"notely/internal/container"
	handlers "notely/internal/interface/http"
	"notely/internal/interface/middleware"
)

// AuthModule wires the public pages and the register/login/logout flows.
// Public: GET /, /login, /register, /succes, /logout; POST /register, /login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.ShowLogin)
	rg.GET("/login", m.Handler.ShowLogin)
	rg.GET("/register", m.Handler.ShowLogin)
	rg.GET("/succes", m.Handler.Success)
	rg.GET("/logout", m.Handler.Logout)

	// Credential endpoints get IP-based rate limits; everything fails open
	// when redis is not configured.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}

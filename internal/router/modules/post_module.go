package modules

import (
	"github.com/gin-gonic/gin"

	handlers "notely/internal/interface/http"
	"notely/internal/interface/middleware"
	"notely/pkg/helpers"
)

// PostModule wires the gated routes behind the session gate.
// Protected: GET /profile; POST /dash, /edit/:id, /delete/:id
type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
	Cookies *helpers.CookieManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager, cookies *helpers.CookieManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt, Cookies: cookies}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	gated := rg.Group("/")
	gated.Use(middleware.SessionGate(m.JWT, m.Cookies))
	{
		gated.GET("/profile", m.Handler.Profile)
		gated.POST("/dash", m.Handler.Create)
		gated.POST("/edit/:id", m.Handler.Edit)
		gated.POST("/delete/:id", m.Handler.Delete)
	}
}

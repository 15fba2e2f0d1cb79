package router

import (
	"notely/internal/container"
	pginfra "notely/internal/infrastructure/postgres"
	handlers "notely/internal/interface/http"
	"notely/internal/router/modules"
	"notely/pkg/helpers"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container is filled.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(container.GetPGPool())
	posts := pginfra.NewPostRepository(container.GetPGPool())

	authHandler := handlers.NewAuthHandler(
		users,
		container.GetJWT(),
		container.GetLogger(),
		cfg.CookieDomain,
		cfg.CookieSecure,
	)
	postHandler := handlers.NewPostHandler(users, posts, container.GetLogger())

	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewPostModule(postHandler, container.GetJWT(), cookies))

	r.Engine.NoRoute(handlers.NotFound)
}

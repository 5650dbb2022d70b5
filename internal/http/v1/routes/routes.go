package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	adshandler "github.com/prospot/prospot-api/internal/http/v1/ads"
	assisthandler "github.com/prospot/prospot-api/internal/http/v1/assist"
	"github.com/prospot/prospot-api/internal/http/v1/listings"
	"github.com/prospot/prospot-api/internal/http/v1/users"
	"github.com/prospot/prospot-api/internal/platform/auth"
	adsvc "github.com/prospot/prospot-api/internal/service/ads"
	assistsvc "github.com/prospot/prospot-api/internal/service/assist"
	catalogsvc "github.com/prospot/prospot-api/internal/service/catalog"
	usersvc "github.com/prospot/prospot-api/internal/service/user"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	verifier auth.Verifier,
	catalogService catalogsvc.Service,
	adService adsvc.Service,
	userService usersvc.Service,
	assistService assistsvc.Service,
) {
	prefix := apiPrefix(api)

	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	listings.Register(api, catalogService, userService, prefix)
	adshandler.Register(api, adService, prefix)
	users.Register(api, userService, prefix)
	assisthandler.Register(api, assistService)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}

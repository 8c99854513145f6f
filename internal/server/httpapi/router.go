package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/shopcore/authsvc/internal/logging"
)

// NewRouter wires the handler into a gin engine with the shared middleware
// chain. Protected routes sit behind the bearer-token check.
func NewRouter(h *Handler, logger logging.Logger, secretKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	router.GET("/", h.Welcome)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
			authGroup.POST("/google-login", h.FederatedLogin)
			authGroup.POST("/refresh", h.Refresh)
			authGroup.POST("/logout", Authenticate(secretKey), h.Logout)
		}

		profileGroup := api.Group("/profile", Authenticate(secretKey))
		{
			profileGroup.GET("/view-profile", h.ViewProfile)
		}
	}

	return router
}

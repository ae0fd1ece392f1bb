package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub/internal/app/models/dto"
	"github.com/learnhub/learnhub/internal/pkg/session"
)

// Context keys set by the session guard.
const (
	ContextSessionKey = "session"
	ContextEmailKey   = "userEmail"
)

// RequireSession guards actions that need an authenticated browser. A
// request without a valid session cookie is rejected with 401 and the
// originating path echoed back, so the client can return there after
// logging in.
func RequireSession(store session.Store, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Session(c)
		if sess == nil {
			logger.Debug().
				Str("path", c.Request.URL.Path).
				Msg("Unauthenticated request to guarded action")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
				Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Please log in to continue").
					WithRedirect(c.Request.URL.Path),
			})
			return
		}

		c.Set(ContextSessionKey, sess)
		c.Set(ContextEmailKey, sess.Email)
		c.Next()
	}
}

package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/pkg/passpkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// AdminUsername is the basic auth user accepted by AdminAuth.
const AdminUsername = "admin"

var (
	// ErrAuthHeaderNotFound indicates a request without basic auth credentials.
	ErrAuthHeaderNotFound = errors.New("authorization header is not provided")
	// ErrBadCredentials indicates a wrong admin user or password.
	ErrBadCredentials = errors.New("invalid admin credentials")
)

// AddAdminAuthorization sets basic auth admin credentials on the request.
func AddAdminAuthorization(r *http.Request, password string) {
	r.SetBasicAuth(AdminUsername, password)
}

// AdminAuth guards admin routes with basic auth checked against a bcrypt hash
// of the admin password.
func AdminAuth(hashedPassword string) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		l := zerolog.Ctx(gctx.Request.Context())

		user, password, ok := gctx.Request.BasicAuth()
		if !ok {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrAuthHeaderNotFound))
			return
		}

		if subtle.ConstantTimeCompare([]byte(user), []byte(AdminUsername)) != 1 {
			l.Warn().Str("user", user).Msg("admin login rejected")
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrBadCredentials))

			return
		}

		if err := passpkg.Check(password, hashedPassword); err != nil {
			l.Warn().Err(err).Msg("admin login rejected")
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrBadCredentials))

			return
		}

		gctx.Next()
	}
}

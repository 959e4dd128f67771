package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"studio_pricing/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const adminTokenCookie = "admin_token"

var errUnexpectedSigningMethod = errors.New("unexpected jwt signing method")

type adminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AdminGate protects the back-office routes.
//
// Admission requires a valid HS256 token whose email claim is on the
// allow-list. Failures redirect to the public site instead of returning 401:
// the admin surface should be invisible to anyone probing it, and a lost
// session should land a human somewhere useful.
func AdminGate(secret string, allowedEmails []string) gin.HandlerFunc {
	log := logging.L("http.admin_gate")

	allowed := make(map[string]bool, len(allowedEmails))
	for _, e := range allowedEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allowed[e] = true
		}
	}

	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			redirectHome(c)
			return
		}

		var claims adminClaims
		parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errUnexpectedSigningMethod
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			log.Warnw("admin token rejected", "err", err)
			redirectHome(c)
			return
		}

		email := strings.ToLower(strings.TrimSpace(claims.Email))
		if !allowed[email] {
			log.Warnw("admin email not on allow-list", "email", email)
			redirectHome(c)
			return
		}

		c.Set("admin_email", email)
		c.Next()
	}
}

// AllowedAdminEmails reads the comma-separated ADMIN_EMAILS allow-list.
func AllowedAdminEmails() []string {
	return strings.Split(os.Getenv("ADMIN_EMAILS"), ",")
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(adminTokenCookie); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
	c.Abort()
}

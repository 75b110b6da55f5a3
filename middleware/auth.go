package middleware

import (
	"net/http"
	"strings"

	"github.com/DigitariaWebs/cheminement-sub002/utils"

	"github.com/gin-gonic/gin"
)

// Actor roles carried in JWT claims.
const (
	RoleClient       = "client"
	RoleProfessional = "professional"
	RoleAdmin        = "admin"
)

// JWTAuthMiddleware authenticates the bearer token and, when roles are given,
// requires the actor to hold one of them. Admins always pass the role check.
// Identity issuance lives outside this service; only verification happens here.
func JWTAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		actorID, role, err := utils.ExtractActorFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		if len(roles) > 0 && role != RoleAdmin {
			allowed := false
			for _, r := range roles {
				if r == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error": "Insufficient permissions",
				})
				return
			}
		}

		c.Set("actorID", actorID)
		c.Set("actorRole", role)
		c.Next()
	}
}

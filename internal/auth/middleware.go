package auth

import (
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/smis-portal/smis-back/internal/config"
)

// Context keys set by Middleware for downstream handlers.
const (
    CtxTeacherID = "teacher_id"
    CtxUsername  = "username"
)

// Middleware gates every resource route. An absent token is 401, a token
// that fails verification (bad signature or expired) is 403. Nothing below
// the gate re-checks the token.
func Middleware(cfg *config.Config) gin.HandlerFunc {
    return func(c *gin.Context) {
        authHeader := c.GetHeader("Authorization")
        if authHeader == "" {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing token"})
            return
        }

        parts := strings.Split(authHeader, " ")
        if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing token"})
            return
        }

        teacherID, username, err := ParseToken([]byte(cfg.JWTSecret), parts[1])
        if err != nil {
            c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
            return
        }

        c.Set(CtxTeacherID, teacherID)
        c.Set(CtxUsername, username)
        c.Next()
    }
}

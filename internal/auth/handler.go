package auth

import (
    "log"
    "net/http"

    "github.com/gin-gonic/gin"
    "golang.org/x/crypto/bcrypt"
    "gorm.io/gorm"

    "github.com/smis-portal/smis-back/internal/config"
)

type LoginRequest struct {
    Username string `json:"username"`
    Password string `json:"password"`
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Exchanges username and password for a bearer token (valid 1 hour)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  LoginRequest  true  "Credentials"
// @Success      200   {object} map[string]string
// @Failure      400   {object} map[string]string
// @Router       /api/login [post]
func LoginHandler(cfg *config.Config, store TeacherStore) gin.HandlerFunc {
    return func(c *gin.Context) {
        var req LoginRequest
        if err := c.ShouldBindJSON(&req); err != nil {
            c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
            return
        }

        teacher, err := store.TeacherByUsername(c.Request.Context(), req.Username)
        if err != nil {
            if err != gorm.ErrRecordNotFound {
                log.Println("Login error:", err)
                c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login"})
                return
            }
            c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
            return
        }

        if bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(req.Password)) != nil {
            c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
            return
        }

        token, err := IssueToken([]byte(cfg.JWTSecret), teacher)
        if err != nil {
            log.Println("Login error:", err)
            c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login"})
            return
        }

        c.JSON(http.StatusOK, gin.H{
            "message":  "Login successful",
            "username": teacher.Username,
            "token":    token,
        })
    }
}

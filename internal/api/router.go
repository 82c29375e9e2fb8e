package api

import (
    "github.com/gin-gonic/gin"
    "github.com/swaggo/files"
    "github.com/swaggo/gin-swagger"

    _ "github.com/smis-portal/smis-back/docs"
    "github.com/smis-portal/smis-back/internal/auth"
    "github.com/smis-portal/smis-back/internal/config"
)

// @title           SMIS Portal API
// @version         1.0
// @description     Backend for the SMIS teaching portal: classes, materials, students and progress updates.
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func SetupRouter(cfg *config.Config, store Store) *gin.Engine {
    r := gin.Default()
    h := NewHandler(store, cfg)

    // Public routes
    r.GET("/health", func(c *gin.Context) {
        if err := store.Ping(); err != nil {
            c.JSON(500, gin.H{"status": "db_ping_error"})
            return
        }
        c.JSON(200, gin.H{"status": "ok"})
    })

    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    r.POST("/api/login", auth.LoginHandler(cfg, store))

    // Protected
    authGroup := r.Group("/api")
    authGroup.Use(auth.Middleware(cfg))
    {
        authGroup.GET("/classes", h.ListClasses)
        authGroup.POST("/classes", h.CreateClass)
        authGroup.GET("/classes/:classId/materials", h.ListMaterials)
        authGroup.POST("/classes/:classId/materials", h.CreateMaterial)
        authGroup.GET("/classes/:classId/students", h.ListStudents)
        authGroup.POST("/classes/:classId/students", h.CreateStudent)
        authGroup.POST("/classes/:classId/students/import", h.ImportStudents)
        authGroup.GET("/students/:studentId/updates", h.ListUpdates)
        authGroup.POST("/students/:studentId/updates", h.CreateUpdate)
    }

    return r
}

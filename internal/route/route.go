package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/config"
	"github.com/VladimirStepanovN/Blog/internal/article"
	"github.com/VladimirStepanovN/Blog/internal/comment"
	"github.com/VladimirStepanovN/Blog/internal/session"
	"github.com/VladimirStepanovN/Blog/internal/tag"
	"github.com/VladimirStepanovN/Blog/internal/user"
)

func initRoute(r *gin.Engine, db *gorm.DB, sessions *session.Store, logger *zap.SugaredLogger) {
	apiV1 := r.Group("/api/v1")
	{
		user.SetupUserRoutes(apiV1, db, sessions, logger)
		article.SetupArticleRoutes(apiV1, db, logger)
		comment.SetupCommentRoutes(apiV1, db, logger)
		tag.SetupTagRoutes(apiV1, db, logger)
	}
}

func SetupRouter(db *gorm.DB, sessions *session.Store, logger *zap.SugaredLogger) *gin.Engine {
	if config.Conf != nil && config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	initRoute(r, db, sessions, logger)

	return r
}

package article

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/middleware"
)

// SetupArticleRoutes 设置文章相关路由
func SetupArticleRoutes(r *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	articleHandler := NewArticleHandler(NewArticleService(NewArticleRepository(db), logger))

	// 公开读取
	articles := r.Group("/articles")
	{
		articles.GET("", articleHandler.GetAll)
		articles.GET("/:id", articleHandler.Get)
	}

	// 写操作需要认证
	articlesAuth := r.Group("/articles")
	articlesAuth.Use(middleware.JWTAuth())
	{
		articlesAuth.POST("", articleHandler.Create)
		articlesAuth.PUT("", articleHandler.Update)
		articlesAuth.DELETE("/:id", articleHandler.Delete)
	}
}

package tag

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/middleware"
)

// SetupTagRoutes 设置标签相关路由
func SetupTagRoutes(r *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	tagHandler := NewTagHandler(NewTagService(NewTagRepository(db), logger))

	// 公开读取
	tags := r.Group("/tags")
	{
		tags.GET("", tagHandler.GetAll)
		tags.GET("/:id", tagHandler.Get)
	}

	// 写操作需要认证，版主校验在服务层
	tagsAuth := r.Group("/tags")
	tagsAuth.Use(middleware.JWTAuth())
	{
		tagsAuth.POST("", tagHandler.Create)
		tagsAuth.PUT("", tagHandler.Update)
		tagsAuth.DELETE("/:id", tagHandler.Delete)
	}
}

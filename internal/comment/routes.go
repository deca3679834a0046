package comment

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/middleware"
)

// SetupCommentRoutes 设置评论相关路由
func SetupCommentRoutes(r *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	commentHandler := NewCommentHandler(NewCommentService(NewCommentRepository(db), logger))

	// 公开读取
	comments := r.Group("/comments")
	{
		comments.GET("", commentHandler.GetAll)
		comments.GET("/:id", commentHandler.Get)
	}

	// 写操作需要认证
	commentsAuth := r.Group("/comments")
	commentsAuth.Use(middleware.JWTAuth())
	{
		commentsAuth.POST("", commentHandler.Create)
		commentsAuth.PUT("", commentHandler.Update)
		commentsAuth.DELETE("/:id", commentHandler.Delete)
	}
}

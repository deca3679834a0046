package user

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/middleware"
	"github.com/VladimirStepanovN/Blog/internal/role"
	"github.com/VladimirStepanovN/Blog/internal/session"
)

// SetupUserRoutes 设置用户相关路由
func SetupUserRoutes(r *gin.RouterGroup, db *gorm.DB, sessions *session.Store, logger *zap.SugaredLogger) {
	userRepo := NewUserRepository(db)
	roleResolver := role.NewResolver(db)
	userHandler := NewUserHandler(NewUserService(userRepo, roleResolver, sessions, logger))

	// 公开路由
	users := r.Group("/users")
	{
		users.POST("/register", userHandler.Register)         // 注册
		users.POST("/authenticate", userHandler.Authenticate) // 登录
		users.POST("/refresh", userHandler.Refresh)           // 刷新令牌
		users.POST("/logout", userHandler.Logout)             // 登出
	}

	// 需要认证的路由
	usersAuth := r.Group("/users")
	usersAuth.Use(middleware.JWTAuth())
	{
		usersAuth.GET("", userHandler.GetAll)        // 用户列表
		usersAuth.GET("/:id", userHandler.Get)       // 用户详情
		usersAuth.PUT("", userHandler.Update)        // 编辑用户
		usersAuth.DELETE("/:id", userHandler.Delete) // 删除用户
	}
}

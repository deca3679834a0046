package main

import (
	"fmt"

	"github.com/VladimirStepanovN/Blog/config"
	"github.com/VladimirStepanovN/Blog/internal/database"
	"github.com/VladimirStepanovN/Blog/internal/logger"
	"github.com/VladimirStepanovN/Blog/internal/role"
	"github.com/VladimirStepanovN/Blog/internal/route"
	"github.com/VladimirStepanovN/Blog/internal/session"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化日志
	log := logger.Init(config.Conf.Log)
	defer log.Sync()

	// 3. 初始化数据库
	database.InitDatabase()
	db := database.GetDB()

	// 4. 播种基础角色，重启可重入
	if err := role.NewResolver(db).EnsureSeeded(); err != nil {
		log.Fatalw("role seeding failed", "error", err)
	}

	// 5. 刷新令牌存储
	sessions := session.NewStore(database.RedisCache)

	// 6. 设置路由并启动
	r := route.SetupRouter(db, sessions, log)

	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	log.Infow("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}

package model

import (
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/model/article"
	"github.com/VladimirStepanovN/Blog/internal/model/comment"
	"github.com/VladimirStepanovN/Blog/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户与角色
		&user.Role{},
		&user.User{},
		// 文章与标签
		&article.Article{},
		&article.Tag{},
		&article.ArticleTag{},
		// 评论
		&comment.Comment{},
	)
	if err != nil {
		return err
	}
	return nil
}

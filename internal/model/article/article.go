// Package article 文章相关模型
package article

import (
	"time"
)

// Article 文章基础信息表
type Article struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	// 作者的外键（来自认证上下文，创建后不可变）
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}

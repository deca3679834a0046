// Package comment 评论模型
package comment

import "time"

// Comment 评论表
// 每条评论属于一个用户（作者）和一篇文章
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ArticleID uint      `gorm:"not null;index" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

package article

import "time"

// Tag 标签表
// 注意：name 不加唯一约束，允许同名标签共存（由版主自行维护）
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// ArticleTag 文章-标签关联表
type ArticleTag struct {
	ArticleID uint      `gorm:"primaryKey;index" json:"article_id"`
	TagID     uint      `gorm:"primaryKey;index" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}

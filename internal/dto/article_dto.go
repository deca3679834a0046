package dto

import "time"

// ========== 请求 DTO ==========

// CreateArticleRequest 创建文章请求
// 作者取认证上下文，不由请求体指定
type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
	TagIDs  []uint `json:"tag_ids"`
}

// UpdateArticleRequest 更新文章请求
// tag_ids 是期望的完整标签集合，服务端用该集合整体替换旧关联，省略时保持不变
type UpdateArticleRequest struct {
	ArticleID uint   `json:"article_id" binding:"required"`
	Title     string `json:"title" binding:"required,max=255"`
	Content   string `json:"content" binding:"required"`
	TagIDs    []uint `json:"tag_ids"`
}

// ========== 响应 DTO ==========

// TagResponse 标签响应
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ArticleResponse 文章响应
type ArticleResponse struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	UserID    uint          `json:"user_id"`
	Tags      []TagResponse `json:"tags"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TagFullResponse 标签详情响应（含使用该标签的文章）
type TagFullResponse struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Articles []ArticleResponse `json:"articles"`
}

package dto

import "time"

// ========== 请求 DTO ==========

// CreateCommentRequest 创建评论请求
type CreateCommentRequest struct {
	Content   string `json:"content" binding:"required,min=1,max=5000"` // 评论内容，1-5000字符
	ArticleID uint   `json:"article_id" binding:"required"`
}

// UpdateCommentRequest 更新评论请求
type UpdateCommentRequest struct {
	CommentID uint   `json:"comment_id" binding:"required"`
	Content   string `json:"content" binding:"required,min=1,max=5000"`
}

// ========== 响应 DTO ==========

// CommentResponse 评论响应
type CommentResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	UserID    uint      `json:"user_id"`
	ArticleID uint      `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

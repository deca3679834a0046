package dto

// CreateTagRequest 创建标签请求
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// UpdateTagRequest 更新标签请求
type UpdateTagRequest struct {
	TagID uint   `json:"tag_id" binding:"required"`
	Name  string `json:"name" binding:"required,max=50"`
}

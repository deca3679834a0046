package dto

import "time"

// ========== 请求 DTO ==========

// RegisterUserRequest 注册请求
type RegisterUserRequest struct {
	FirstName       string `json:"first_name" binding:"required,max=50"`
	LastName        string `json:"last_name" binding:"required,max=50"`
	Login           string `json:"login" binding:"required,min=3,max=50"`
	Email           string `json:"email" binding:"required,email,max=100"`
	Password        string `json:"password" binding:"required,min=6,max=100"`
	PasswordApprove string `json:"password_approve" binding:"required,eqfield=Password"`
}

// AuthenticateRequest 登录请求
type AuthenticateRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest 编辑用户请求
// 可变字段全量覆盖：姓、名、邮箱、密码
type UpdateUserRequest struct {
	UserID    uint   `json:"user_id" binding:"required"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Password  string `json:"password" binding:"omitempty,min=6,max=100"`
}

// ========== 响应 DTO ==========

// UserResponse 用户信息响应
type UserResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Login     string    `json:"login"`
	RoleName  string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthenticateResponse 登录响应
type AuthenticateResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// RefreshTokenRequest 刷新令牌请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest 登出请求
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse 刷新令牌响应，旧令牌作废并轮换出新令牌
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

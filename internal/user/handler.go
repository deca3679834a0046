package user

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VladimirStepanovN/Blog/internal/dto"
	"github.com/VladimirStepanovN/Blog/internal/response"
)

type UserHandler struct {
	userService *UserService
}

func NewUserHandler(userService *UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register 注册新用户
// @Summary 注册新用户
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "注册请求"
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	user, bizErr := h.userService.Register(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, user)
}

// Authenticate 登录
// @Summary 登录，签发访问令牌和刷新令牌
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.AuthenticateRequest true "登录请求"
// @Success 200 {object} response.Response{data=dto.AuthenticateResponse}
// @Router /users/authenticate [post]
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req dto.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	result, bizErr := h.userService.Authenticate(c.Request.Context(), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// Refresh 刷新访问令牌
// @Summary 用刷新令牌换新令牌对
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "刷新请求"
// @Success 200 {object} response.Response{data=dto.RefreshTokenResponse}
// @Router /users/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	result, bizErr := h.userService.Refresh(c.Request.Context(), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// Logout 登出
// @Summary 登出，撤销刷新令牌
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.LogoutRequest true "登出请求"
// @Success 200 {object} response.Response
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	if bizErr := h.userService.Logout(c.Request.Context(), req); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "登出成功"})
}

// Update 编辑用户
// @Summary 编辑用户（管理员或本人）
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "编辑请求"
// @Success 200 {object} response.Response
// @Router /users [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	login, _ := c.Get("login")

	if bizErr := h.userService.Update(req, login.(string)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "更新成功"})
}

// Delete 删除用户
// @Summary 删除用户（管理员或本人）
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的用户ID"),
		))
		return
	}

	login, _ := c.Get("login")

	if bizErr := h.userService.Delete(uint(userID), login.(string)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "删除成功"})
}

// Get 获取用户详情
// @Summary 获取用户详情
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的用户ID"),
		))
		return
	}

	user, bizErr := h.userService.Get(uint(userID))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, user)
}

// GetAll 获取用户列表
// @Summary 获取全部用户
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.UserResponse}
// @Router /users [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	users, bizErr := h.userService.GetAll()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, users)
}

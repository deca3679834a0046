package comment

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VladimirStepanovN/Blog/internal/dto"
	"github.com/VladimirStepanovN/Blog/internal/response"
)

type CommentHandler struct {
	commentService *CommentService
}

func NewCommentHandler(commentService *CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create 发表评论
// @Summary 发表评论
// @Tags Comment
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentRequest true "评论请求"
// @Success 200 {object} response.Response{data=dto.CommentResponse}
// @Router /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	userID, _ := c.Get("user_id")

	comment, bizErr := h.commentService.Create(req, userID.(uint))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, comment)
}

// Update 编辑评论
// @Summary 编辑评论（作者或版主）
// @Tags Comment
// @Accept json
// @Produce json
// @Param request body dto.UpdateCommentRequest true "编辑评论请求"
// @Success 200 {object} response.Response
// @Router /comments [put]
func (h *CommentHandler) Update(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	userID, _ := c.Get("user_id")
	userRole, _ := c.Get("user_role")

	if bizErr := h.commentService.Update(req, userID.(uint), userRole.(string)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "更新成功"})
}

// Delete 删除评论
// @Summary 删除评论（作者或版主）
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的评论ID"),
		))
		return
	}

	userID, _ := c.Get("user_id")
	userRole, _ := c.Get("user_role")

	if bizErr := h.commentService.Delete(uint(commentID), userID.(uint), userRole.(string)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "删除成功"})
}

// Get 获取评论详情
// @Summary 获取评论详情
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response{data=dto.CommentResponse}
// @Router /comments/{id} [get]
func (h *CommentHandler) Get(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的评论ID"),
		))
		return
	}

	comment, bizErr := h.commentService.Get(uint(commentID))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, comment)
}

// GetAll 获取评论列表
// @Summary 获取全部评论，可按文章过滤
// @Tags Comment
// @Accept json
// @Produce json
// @Param article_id query int false "文章ID"
// @Success 200 {object} response.Response{data=[]dto.CommentResponse}
// @Router /comments [get]
func (h *CommentHandler) GetAll(c *gin.Context) {
	articleIDStr := c.Query("article_id")

	var (
		comments []dto.CommentResponse
		bizErr   *response.BusinessError
	)
	if articleIDStr != "" {
		articleID, err := strconv.Atoi(articleIDStr)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.ParseError),
				response.WithErrorMessage("无效的文章ID"),
			))
			return
		}
		comments, bizErr = h.commentService.GetAllByArticle(uint(articleID))
	} else {
		comments, bizErr = h.commentService.GetAll()
	}

	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, comments)
}

package article

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VladimirStepanovN/Blog/internal/dto"
	"github.com/VladimirStepanovN/Blog/internal/response"
)

type ArticleHandler struct {
	articleService *ArticleService
}

func NewArticleHandler(articleService *ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// Create 创建文章
// @Summary 创建文章
// @Tags Article
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "创建文章请求"
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	userID, _ := c.Get("user_id")

	article, bizErr := h.articleService.Create(req, userID.(uint))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, article)
}

// Update 编辑文章
// @Summary 编辑文章（作者或版主）
// @Tags Article
// @Accept json
// @Produce json
// @Param request body dto.UpdateArticleRequest true "编辑文章请求"
// @Success 200 {object} response.Response
// @Router /articles [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	userID, _ := c.Get("user_id")
	userRole, _ := c.Get("user_role")

	if bizErr := h.articleService.Update(req, userID.(uint), userRole.(string)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "更新成功"})
}

// Delete 删除文章
// @Summary 删除文章（作者或版主）
// @Tags Article
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response
// @Router /articles/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	articleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的文章ID"),
		))
		return
	}

	userID, _ := c.Get("user_id")
	userRole, _ := c.Get("user_role")

	if bizErr := h.articleService.Delete(uint(articleID), userID.(uint), userRole.(string)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "删除成功"})
}

// Get 获取文章详情
// @Summary 获取文章详情（含标签）
// @Tags Article
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /articles/{id} [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	articleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的文章ID"),
		))
		return
	}

	article, bizErr := h.articleService.GetByID(uint(articleID))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, article)
}

// GetAll 获取文章列表
// @Summary 获取全部文章，可按作者过滤
// @Tags Article
// @Accept json
// @Produce json
// @Param user_id query int false "作者ID"
// @Success 200 {object} response.Response{data=[]dto.ArticleResponse}
// @Router /articles [get]
func (h *ArticleHandler) GetAll(c *gin.Context) {
	userIDStr := c.Query("user_id")

	var (
		articles []dto.ArticleResponse
		bizErr   *response.BusinessError
	)
	if userIDStr != "" {
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.ParseError),
				response.WithErrorMessage("无效的作者ID"),
			))
			return
		}
		articles, bizErr = h.articleService.GetAllByUser(uint(userID))
	} else {
		articles, bizErr = h.articleService.GetAll()
	}

	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, articles)
}

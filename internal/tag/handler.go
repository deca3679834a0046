package tag

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VladimirStepanovN/Blog/internal/dto"
	"github.com/VladimirStepanovN/Blog/internal/response"
)

type TagHandler struct {
	tagService *TagService
}

func NewTagHandler(tagService *TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// Create 创建标签
// @Summary 创建标签（仅版主）
// @Tags Tag
// @Accept json
// @Produce json
// @Param request body dto.CreateTagRequest true "创建标签请求"
// @Success 200 {object} response.Response{data=dto.TagResponse}
// @Router /tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	userRole, _ := c.Get("user_role")

	tag, bizErr := h.tagService.Create(req, userRole.(string))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, tag)
}

// Update 重命名标签
// @Summary 重命名标签（仅版主）
// @Tags Tag
// @Accept json
// @Produce json
// @Param request body dto.UpdateTagRequest true "更新标签请求"
// @Success 200 {object} response.Response
// @Router /tags [put]
func (h *TagHandler) Update(c *gin.Context) {
	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, req, err)
		return
	}

	userRole, _ := c.Get("user_role")

	if bizErr := h.tagService.Update(req, userRole.(string)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "更新成功"})
}

// Delete 删除标签
// @Summary 删除标签（仅版主）
// @Tags Tag
// @Accept json
// @Produce json
// @Param id path int true "标签ID"
// @Success 200 {object} response.Response
// @Router /tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	tagID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的标签ID"),
		))
		return
	}

	userRole, _ := c.Get("user_role")

	if bizErr := h.tagService.Delete(uint(tagID), userRole.(string)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "删除成功"})
}

// Get 获取标签
// @Summary 获取标签
// @Tags Tag
// @Accept json
// @Produce json
// @Param id path int true "标签ID"
// @Param full query bool false "是否带文章列表"
// @Success 200 {object} response.Response{data=dto.TagFullResponse}
// @Router /tags/{id} [get]
func (h *TagHandler) Get(c *gin.Context) {
	tagID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的标签ID"),
		))
		return
	}

	if c.DefaultQuery("full", "false") == "true" {
		full, bizErr := h.tagService.GetFull(uint(tagID))
		if bizErr != nil {
			dto.ErrorResponse(c, bizErr)
			return
		}
		dto.SuccessResponse(c, full)
		return
	}

	tag, bizErr := h.tagService.Get(uint(tagID))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, tag)
}

// GetAll 获取标签列表
// @Summary 获取全部标签
// @Tags Tag
// @Accept json
// @Produce json
// @Param full query bool false "是否带文章列表"
// @Success 200 {object} response.Response{data=[]dto.TagFullResponse}
// @Router /tags [get]
func (h *TagHandler) GetAll(c *gin.Context) {
	if c.DefaultQuery("full", "false") == "true" {
		full, bizErr := h.tagService.GetAllFull()
		if bizErr != nil {
			dto.ErrorResponse(c, bizErr)
			return
		}
		dto.SuccessResponse(c, full)
		return
	}

	tags, bizErr := h.tagService.GetAll()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, tags)
}

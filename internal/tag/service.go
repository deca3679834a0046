package tag

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/authz"
	"github.com/VladimirStepanovN/Blog/internal/dto"
	articleModel "github.com/VladimirStepanovN/Blog/internal/model/article"
	"github.com/VladimirStepanovN/Blog/internal/response"
)

// TagService 标签服务
// 标签没有所有者概念，写操作只对版主开放
type TagService struct {
	tagRepo *TagRepository
	logger  *zap.SugaredLogger
}

func NewTagService(tagRepo *TagRepository, logger *zap.SugaredLogger) *TagService {
	return &TagService{tagRepo: tagRepo, logger: logger}
}

// Create 创建标签（仅版主）
func (s *TagService) Create(req dto.CreateTagRequest, actorRole string) (*dto.TagResponse, *response.BusinessError) {
	if bizErr := requireModerator(actorRole); bizErr != nil {
		return nil, bizErr
	}

	t := &articleModel.Tag{
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := s.tagRepo.Create(t); err != nil {
		return nil, s.internalError("标签创建失败", err)
	}

	s.logger.Infow("tag created", "tag_id", t.ID, "name", t.Name)
	return &dto.TagResponse{ID: t.ID, Name: t.Name}, nil
}

// Update 重命名标签（仅版主）
func (s *TagService) Update(req dto.UpdateTagRequest, actorRole string) *response.BusinessError {
	if bizErr := requireModerator(actorRole); bizErr != nil {
		return bizErr
	}

	if _, err := s.tagRepo.GetByID(req.TagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tagNotFound()
		}
		return s.internalError("查询标签失败", err)
	}

	if err := s.tagRepo.Update(req.TagID, map[string]interface{}{"name": req.Name}); err != nil {
		return s.internalError("标签更新失败", err)
	}

	s.logger.Infow("tag updated", "tag_id", req.TagID, "name", req.Name)
	return nil
}

// Delete 删除标签（仅版主），连同文章关联一起清除
func (s *TagService) Delete(tagID uint, actorRole string) *response.BusinessError {
	if bizErr := requireModerator(actorRole); bizErr != nil {
		return bizErr
	}

	if _, err := s.tagRepo.GetByID(tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tagNotFound()
		}
		return s.internalError("查询标签失败", err)
	}

	if err := s.tagRepo.Delete(tagID); err != nil {
		return s.internalError("标签删除失败", err)
	}

	s.logger.Infow("tag deleted", "tag_id", tagID)
	return nil
}

// Get 获取标签
func (s *TagService) Get(tagID uint) (*dto.TagResponse, *response.BusinessError) {
	t, err := s.tagRepo.GetByID(tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tagNotFound()
		}
		return nil, s.internalError("查询标签失败", err)
	}
	return &dto.TagResponse{ID: t.ID, Name: t.Name}, nil
}

// GetAll 获取全部标签
func (s *TagService) GetAll() ([]dto.TagResponse, *response.BusinessError) {
	tags, err := s.tagRepo.List()
	if err != nil {
		return nil, s.internalError("查询标签列表失败", err)
	}

	result := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		result = append(result, dto.TagResponse{ID: t.ID, Name: t.Name})
	}
	return result, nil
}

// GetFull 获取标签详情，带使用该标签的文章
func (s *TagService) GetFull(tagID uint) (*dto.TagFullResponse, *response.BusinessError) {
	t, err := s.tagRepo.GetByID(tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tagNotFound()
		}
		return nil, s.internalError("查询标签失败", err)
	}

	articles, err := s.tagRepo.GetArticles(tagID)
	if err != nil {
		return nil, s.internalError("查询标签文章失败", err)
	}

	articleResponses := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		resp, bizErr := s.toArticleResponse(&articles[i])
		if bizErr != nil {
			return nil, bizErr
		}
		articleResponses = append(articleResponses, *resp)
	}

	return &dto.TagFullResponse{
		ID:       t.ID,
		Name:     t.Name,
		Articles: articleResponses,
	}, nil
}

// GetAllFull 获取全部标签详情
func (s *TagService) GetAllFull() ([]dto.TagFullResponse, *response.BusinessError) {
	tags, err := s.tagRepo.List()
	if err != nil {
		return nil, s.internalError("查询标签列表失败", err)
	}

	result := make([]dto.TagFullResponse, 0, len(tags))
	for _, t := range tags {
		full, bizErr := s.GetFull(t.ID)
		if bizErr != nil {
			return nil, bizErr
		}
		result = append(result, *full)
	}
	return result, nil
}

func (s *TagService) toArticleResponse(a *articleModel.Article) (*dto.ArticleResponse, *response.BusinessError) {
	tags, err := s.tagRepo.ArticleTags(a.ID)
	if err != nil {
		return nil, s.internalError("查询文章标签失败", err)
	}

	tagResponses := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		tagResponses = append(tagResponses, dto.TagResponse{ID: t.ID, Name: t.Name})
	}

	return &dto.ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		UserID:    a.UserID,
		Tags:      tagResponses,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}, nil
}

func (s *TagService) internalError(msg string, err error) *response.BusinessError {
	s.logger.Errorw(msg, "error", err)
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(msg),
		response.WithError(err),
	)
}

func requireModerator(actorRole string) *response.BusinessError {
	if authz.CanManageTags(actorRole) {
		return nil
	}
	return response.NewBusinessError(
		response.WithErrorCode(response.Forbidden),
		response.WithErrorMessage("标签管理仅限版主"),
	)
}

func tagNotFound() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage("标签不存在"),
	)
}

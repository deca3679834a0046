package article

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

// ArticleService 文章服务
type ArticleService struct {
	articleRepo *ArticleRepository
	logger      *zap.SugaredLogger
}

func NewArticleService(articleRepo *ArticleRepository, logger *zap.SugaredLogger) *ArticleService {
	return &ArticleService{articleRepo: articleRepo, logger: logger}
}

// Create 创建文章，作者取自认证上下文，提交的标签一并关联
func (s *ArticleService) Create(req dto.CreateArticleRequest, userID uint) (*dto.ArticleResponse, *response.BusinessError) {
	tagIDs, bizErr := s.checkTagIDs(req.TagIDs)
	if bizErr != nil {
		return nil, bizErr
	}

	a := &articleModel.Article{
		Title:     req.Title,
		Content:   req.Content,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.articleRepo.Create(a, tagIDs); err != nil {
		return nil, s.internalError("文章创建失败", err)
	}

	s.logger.Infow("article created", "article_id", a.ID, "user_id", userID)
	return s.toResponse(a)
}

// Update 编辑文章
// 标签字段提交时用新集合整体替换旧关联，未提交时保持不变
func (s *ArticleService) Update(req dto.UpdateArticleRequest, actorID uint, actorRole string) *response.BusinessError {
	a, err := s.articleRepo.GetByID(req.ArticleID)
	exists := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return s.internalError("查询文章失败", err)
	}

	var ownerID *uint
	if exists {
		ownerID = &a.UserID
	}

	decision := authz.Decide(actorRole, actorID, authz.Target{
		Kind:    authz.KindArticle,
		Exists:  exists,
		OwnerID: ownerID,
	})
	if bizErr := denyError(decision, "文章不存在"); bizErr != nil {
		return bizErr
	}

	replaceTags := req.TagIDs != nil
	var tagIDs []uint
	if replaceTags {
		var bizErr *response.BusinessError
		tagIDs, bizErr = s.checkTagIDs(req.TagIDs)
		if bizErr != nil {
			return bizErr
		}
	}

	fields := map[string]interface{}{
		"title":      req.Title,
		"content":    req.Content,
		"updated_at": time.Now(),
	}

	if err := s.articleRepo.Update(req.ArticleID, fields, tagIDs, replaceTags); err != nil {
		return s.internalError("文章更新失败", err)
	}

	s.logger.Infow("article updated", "article_id", req.ArticleID, "actor_id", actorID)
	return nil
}

// Delete 删除文章
func (s *ArticleService) Delete(articleID uint, actorID uint, actorRole string) *response.BusinessError {
	a, err := s.articleRepo.GetByID(articleID)
	exists := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return s.internalError("查询文章失败", err)
	}

	var ownerID *uint
	if exists {
		ownerID = &a.UserID
	}

	decision := authz.Decide(actorRole, actorID, authz.Target{
		Kind:    authz.KindArticle,
		Exists:  exists,
		OwnerID: ownerID,
	})
	if bizErr := denyError(decision, "文章不存在"); bizErr != nil {
		return bizErr
	}

	if err := s.articleRepo.Delete(articleID); err != nil {
		return s.internalError("文章删除失败", err)
	}

	s.logger.Infow("article deleted", "article_id", articleID, "actor_id", actorID)
	return nil
}

// GetByID 获取文章详情（含标签）
func (s *ArticleService) GetByID(articleID uint) (*dto.ArticleResponse, *response.BusinessError) {
	a, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("文章不存在"),
			)
		}
		return nil, s.internalError("查询文章失败", err)
	}
	return s.toResponse(a)
}

// GetAll 获取全部文章
func (s *ArticleService) GetAll() ([]dto.ArticleResponse, *response.BusinessError) {
	articles, err := s.articleRepo.List()
	if err != nil {
		return nil, s.internalError("查询文章列表失败", err)
	}
	return s.toResponseList(articles)
}

// GetAllByUser 获取指定作者的文章
func (s *ArticleService) GetAllByUser(userID uint) ([]dto.ArticleResponse, *response.BusinessError) {
	articles, err := s.articleRepo.ListByUser(userID)
	if err != nil {
		return nil, s.internalError("查询文章列表失败", err)
	}
	return s.toResponseList(articles)
}

// checkTagIDs 去重并校验提交的标签是否都存在，标签不存在算参数错误
func (s *ArticleService) checkTagIDs(ids []uint) ([]uint, *response.BusinessError) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	tags, err := s.articleRepo.GetTagsByIDs(unique)
	if err != nil {
		return nil, s.internalError("查询标签失败", err)
	}
	if len(tags) != len(unique) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("提交的标签中存在无效ID"),
		)
	}
	return unique, nil
}

func (s *ArticleService) toResponse(a *articleModel.Article) (*dto.ArticleResponse, *response.BusinessError) {
	tags, err := s.articleRepo.GetTags(a.ID)
	if err != nil {
		return nil, s.internalError("查询文章标签失败", err)
	}

	tagResponses := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		tagResponses = append(tagResponses, dto.TagResponse{ID: tag.ID, Name: tag.Name})
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

func (s *ArticleService) toResponseList(articles []articleModel.Article) ([]dto.ArticleResponse, *response.BusinessError) {
	result := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		resp, bizErr := s.toResponse(&articles[i])
		if bizErr != nil {
			return nil, bizErr
		}
		result = append(result, *resp)
	}
	return result, nil
}

func (s *ArticleService) internalError(msg string, err error) *response.BusinessError {
	s.logger.Errorw(msg, "error", err)
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(msg),
		response.WithError(err),
	)
}

// denyError 把授权判定结果转成业务错误，放行时返回 nil
func denyError(decision authz.Decision, notFoundMsg string) *response.BusinessError {
	switch decision {
	case authz.DecisionAllowed:
		return nil
	case authz.DecisionNotFound:
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage(notFoundMsg),
		)
	default:
		return response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("无权限执行此操作"),
		)
	}
}

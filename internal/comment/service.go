package comment

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/authz"
	"github.com/VladimirStepanovN/Blog/internal/dto"
	commentModel "github.com/VladimirStepanovN/Blog/internal/model/comment"
	"github.com/VladimirStepanovN/Blog/internal/response"
)

// CommentService 评论服务
type CommentService struct {
	commentRepo *CommentRepository
	logger      *zap.SugaredLogger
}

func NewCommentService(commentRepo *CommentRepository, logger *zap.SugaredLogger) *CommentService {
	return &CommentService{commentRepo: commentRepo, logger: logger}
}

// Create 发表评论，作者和文章必须都能解析到
func (s *CommentService) Create(req dto.CreateCommentRequest, userID uint) (*dto.CommentResponse, *response.BusinessError) {
	userOK, err := s.commentRepo.UserExists(userID)
	if err != nil {
		return nil, s.internalError("查询用户失败", err)
	}
	if !userOK {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("评论作者不存在"),
		)
	}

	articleOK, err := s.commentRepo.ArticleExists(req.ArticleID)
	if err != nil {
		return nil, s.internalError("查询文章失败", err)
	}
	if !articleOK {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("被评论的文章不存在"),
		)
	}

	c := &commentModel.Comment{
		Content:   req.Content,
		UserID:    userID,
		ArticleID: req.ArticleID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(c); err != nil {
		return nil, s.internalError("评论创建失败", err)
	}

	s.logger.Infow("comment created", "comment_id", c.ID, "article_id", c.ArticleID, "user_id", userID)
	resp := toCommentResponse(c)
	return &resp, nil
}

// Update 编辑评论
func (s *CommentService) Update(req dto.UpdateCommentRequest, actorID uint, actorRole string) *response.BusinessError {
	c, err := s.commentRepo.GetByID(req.CommentID)
	exists := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return s.internalError("查询评论失败", err)
	}

	var ownerID *uint
	if exists {
		ownerID = &c.UserID
	}

	decision := authz.Decide(actorRole, actorID, authz.Target{
		Kind:    authz.KindComment,
		Exists:  exists,
		OwnerID: ownerID,
	})
	if bizErr := denyError(decision, "评论不存在"); bizErr != nil {
		return bizErr
	}

	fields := map[string]interface{}{
		"content":    req.Content,
		"updated_at": time.Now(),
	}
	if err := s.commentRepo.Update(req.CommentID, fields); err != nil {
		return s.internalError("评论更新失败", err)
	}

	s.logger.Infow("comment updated", "comment_id", req.CommentID, "actor_id", actorID)
	return nil
}

// Delete 删除评论
func (s *CommentService) Delete(commentID uint, actorID uint, actorRole string) *response.BusinessError {
	c, err := s.commentRepo.GetByID(commentID)
	exists := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return s.internalError("查询评论失败", err)
	}

	var ownerID *uint
	if exists {
		ownerID = &c.UserID
	}

	decision := authz.Decide(actorRole, actorID, authz.Target{
		Kind:    authz.KindComment,
		Exists:  exists,
		OwnerID: ownerID,
	})
	if bizErr := denyError(decision, "评论不存在"); bizErr != nil {
		return bizErr
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return s.internalError("评论删除失败", err)
	}

	s.logger.Infow("comment deleted", "comment_id", commentID, "actor_id", actorID)
	return nil
}

// Get 获取评论详情
func (s *CommentService) Get(commentID uint) (*dto.CommentResponse, *response.BusinessError) {
	c, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("评论不存在"),
			)
		}
		return nil, s.internalError("查询评论失败", err)
	}
	resp := toCommentResponse(c)
	return &resp, nil
}

// GetAll 获取全部评论
func (s *CommentService) GetAll() ([]dto.CommentResponse, *response.BusinessError) {
	comments, err := s.commentRepo.List()
	if err != nil {
		return nil, s.internalError("查询评论列表失败", err)
	}
	return toCommentResponseList(comments), nil
}

// GetAllByArticle 获取文章下的评论
func (s *CommentService) GetAllByArticle(articleID uint) ([]dto.CommentResponse, *response.BusinessError) {
	comments, err := s.commentRepo.ListByArticle(articleID)
	if err != nil {
		return nil, s.internalError("查询评论列表失败", err)
	}
	return toCommentResponseList(comments), nil
}

func (s *CommentService) internalError(msg string, err error) *response.BusinessError {
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

func toCommentResponse(c *commentModel.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		UserID:    c.UserID,
		ArticleID: c.ArticleID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCommentResponseList(comments []commentModel.Comment) []dto.CommentResponse {
	result := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, toCommentResponse(&comments[i]))
	}
	return result
}

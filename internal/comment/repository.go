package comment

import (
	"gorm.io/gorm"

	articleModel "github.com/VladimirStepanovN/Blog/internal/model/article"
	commentModel "github.com/VladimirStepanovN/Blog/internal/model/comment"
	userModel "github.com/VladimirStepanovN/Blog/internal/model/user"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(c *commentModel.Comment) error {
	return r.db.Create(c).Error
}

func (r *CommentRepository) GetByID(id uint) (*commentModel.Comment, error) {
	var c commentModel.Comment
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) List() ([]commentModel.Comment, error) {
	var comments []commentModel.Comment
	if err := r.db.Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) ListByArticle(articleID uint) ([]commentModel.Comment, error) {
	var comments []commentModel.Comment
	if err := r.db.Where("article_id = ?", articleID).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&commentModel.Comment{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CommentRepository) Delete(id uint) error {
	return r.db.Delete(&commentModel.Comment{}, id).Error
}

// UserExists 校验评论作者是否存在
func (r *CommentRepository) UserExists(userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&userModel.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ArticleExists 校验被评论的文章是否存在
func (r *CommentRepository) ArticleExists(articleID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&articleModel.Article{}).Where("id = ?", articleID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

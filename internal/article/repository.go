package article

import (
	"time"

	"gorm.io/gorm"

	articleModel "github.com/VladimirStepanovN/Blog/internal/model/article"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Create 创建文章并在同一事务内建立标签关联
func (r *ArticleRepository) Create(a *articleModel.Article, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return insertTagLinks(tx, a.ID, tagIDs)
	})
}

func (r *ArticleRepository) GetByID(id uint) (*articleModel.Article, error) {
	var a articleModel.Article
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepository) List() ([]articleModel.Article, error) {
	var articles []articleModel.Article
	if err := r.db.Order("id ASC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *ArticleRepository) ListByUser(userID uint) ([]articleModel.Article, error) {
	var articles []articleModel.Article
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Update 按字段更新文章；replaceTags 为 true 时在同一事务内
// 用提交的完整标签集合替换旧的关联（删除全部旧关联后插入新集合）
func (r *ArticleRepository) Update(id uint, fields map[string]interface{}, tagIDs []uint, replaceTags bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&articleModel.Article{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return err
		}

		if !replaceTags {
			return nil
		}

		if err := tx.Where("article_id = ?", id).Delete(&articleModel.ArticleTag{}).Error; err != nil {
			return err
		}
		return insertTagLinks(tx, id, tagIDs)
	})
}

// Delete 删除文章及其标签关联
func (r *ArticleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&articleModel.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&articleModel.Article{}, id).Error
	})
}

// GetTags 取文章当前关联的标签
func (r *ArticleRepository) GetTags(articleID uint) ([]articleModel.Tag, error) {
	var tags []articleModel.Tag
	err := r.db.
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Order("tags.id ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTagsByIDs 按ID集合查标签，用于校验提交的标签是否都存在
func (r *ArticleRepository) GetTagsByIDs(ids []uint) ([]articleModel.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []articleModel.Tag
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func insertTagLinks(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]articleModel.ArticleTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, articleModel.ArticleTag{
			ArticleID: articleID,
			TagID:     tagID,
			CreatedAt: time.Now(),
		})
	}
	return tx.Create(&links).Error
}

package tag

import (
	"gorm.io/gorm"

	articleModel "github.com/VladimirStepanovN/Blog/internal/model/article"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(t *articleModel.Tag) error {
	return r.db.Create(t).Error
}

func (r *TagRepository) GetByID(id uint) (*articleModel.Tag, error) {
	var t articleModel.Tag
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TagRepository) List() ([]articleModel.Tag, error) {
	var tags []articleModel.Tag
	if err := r.db.Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&articleModel.Tag{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除标签及其全部文章关联
func (r *TagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&articleModel.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&articleModel.Tag{}, id).Error
	})
}

// ArticleTags 取某篇文章当前关联的标签
func (r *TagRepository) ArticleTags(articleID uint) ([]articleModel.Tag, error) {
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

// GetArticles 取挂在该标签下的全部文章
func (r *TagRepository) GetArticles(tagID uint) ([]articleModel.Article, error) {
	var articles []articleModel.Article
	err := r.db.
		Joins("JOIN article_tags ON article_tags.article_id = articles.id").
		Where("article_tags.tag_id = ?", tagID).
		Order("articles.id ASC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

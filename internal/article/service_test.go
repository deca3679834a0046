package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/dto"
	articleModel "github.com/VladimirStepanovN/Blog/internal/model/article"
	userModel "github.com/VladimirStepanovN/Blog/internal/model/user"
	"github.com/VladimirStepanovN/Blog/internal/response"
	"github.com/VladimirStepanovN/Blog/internal/testutils"
)

func newTestService(t *testing.T) (*ArticleService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	svc := NewArticleService(NewArticleRepository(db), zap.NewNop().Sugar())
	return svc, db
}

func linkedTagIDs(t *testing.T, db *gorm.DB, articleID uint) []uint {
	var links []articleModel.ArticleTag
	require.NoError(t, db.Where("article_id = ?", articleID).Order("tag_id ASC").Find(&links).Error)
	ids := make([]uint, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.TagID)
	}
	return ids
}

func TestCreate(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	tagGo := testutils.CreateTestTag(db, "go")
	tagWeb := testutils.CreateTestTag(db, "web")

	t.Run("带标签", func(t *testing.T) {
		resp, bizErr := svc.Create(dto.CreateArticleRequest{
			Title:   "Первая статья",
			Content: "Текст статьи",
			TagIDs:  []uint{tagGo.ID, tagWeb.ID},
		}, author.ID)
		require.Nil(t, bizErr)

		assert.Equal(t, author.ID, resp.UserID)
		assert.Len(t, resp.Tags, 2)
		assert.Equal(t, []uint{tagGo.ID, tagWeb.ID}, linkedTagIDs(t, db, resp.ID))
	})

	t.Run("无标签", func(t *testing.T) {
		resp, bizErr := svc.Create(dto.CreateArticleRequest{
			Title:   "Без тегов",
			Content: "Текст",
		}, author.ID)
		require.Nil(t, bizErr)
		assert.Empty(t, resp.Tags)
	})

	t.Run("无效标签ID", func(t *testing.T) {
		_, bizErr := svc.Create(dto.CreateArticleRequest{
			Title:   "Статья",
			Content: "Текст",
			TagIDs:  []uint{tagGo.ID, 99999},
		}, author.ID)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.InvalidParameter, bizErr.Code)

		// 失败时不应留下半成品文章
		var count int64
		require.NoError(t, db.Model(&articleModel.Article{}).Where("title = ?", "Статья").Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("重复标签ID只建一条关联", func(t *testing.T) {
		resp, bizErr := svc.Create(dto.CreateArticleRequest{
			Title:   "Дубликаты",
			Content: "Текст",
			TagIDs:  []uint{tagGo.ID, tagGo.ID},
		}, author.ID)
		require.Nil(t, bizErr)
		assert.Equal(t, []uint{tagGo.ID}, linkedTagIDs(t, db, resp.ID))
	})
}

// 标签整体替换：{A,B} 提交 {A,C} 后关联恰好是 {A,C}
func TestUpdate_TagReconciliation(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	tagA := testutils.CreateTestTag(db, "a")
	tagB := testutils.CreateTestTag(db, "b")
	tagC := testutils.CreateTestTag(db, "c")

	a := testutils.CreateTestArticle(db, author.ID)
	testutils.AttachTestTag(db, a.ID, tagA.ID)
	testutils.AttachTestTag(db, a.ID, tagB.ID)

	bizErr := svc.Update(dto.UpdateArticleRequest{
		ArticleID: a.ID,
		Title:     a.Title,
		Content:   a.Content,
		TagIDs:    []uint{tagA.ID, tagC.ID},
	}, author.ID, userModel.RoleNameUser)
	require.Nil(t, bizErr)

	assert.Equal(t, []uint{tagA.ID, tagC.ID}, linkedTagIDs(t, db, a.ID))
}

func TestUpdate_TagsUntouchedWhenOmitted(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	tagA := testutils.CreateTestTag(db, "a")

	a := testutils.CreateTestArticle(db, author.ID)
	testutils.AttachTestTag(db, a.ID, tagA.ID)

	bizErr := svc.Update(dto.UpdateArticleRequest{
		ArticleID: a.ID,
		Title:     "Новый заголовок",
		Content:   a.Content,
	}, author.ID, userModel.RoleNameUser)
	require.Nil(t, bizErr)

	assert.Equal(t, []uint{tagA.ID}, linkedTagIDs(t, db, a.ID))

	var stored articleModel.Article
	require.NoError(t, db.First(&stored, a.ID).Error)
	assert.Equal(t, "Новый заголовок", stored.Title)
}

func TestUpdate_Permissions(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	stranger := testutils.CreateTestUser(db)
	moderator := testutils.CreateTestUser(db, testutils.WithRoleID(testutils.RoleIDModerator))

	a := testutils.CreateTestArticle(db, author.ID)

	req := dto.UpdateArticleRequest{
		ArticleID: a.ID,
		Title:     "Правка",
		Content:   a.Content,
	}

	t.Run("非作者被拒", func(t *testing.T) {
		bizErr := svc.Update(req, stranger.ID, userModel.RoleNameUser)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)
	})

	t.Run("版主放行", func(t *testing.T) {
		assert.Nil(t, svc.Update(req, moderator.ID, userModel.RoleNameModerator))
	})

	t.Run("作者放行", func(t *testing.T) {
		assert.Nil(t, svc.Update(req, author.ID, userModel.RoleNameUser))
	})

	t.Run("文章不存在", func(t *testing.T) {
		missing := req
		missing.ArticleID = 99999
		bizErr := svc.Update(missing, moderator.ID, userModel.RoleNameModerator)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

func TestDelete(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	stranger := testutils.CreateTestUser(db)
	moderator := testutils.CreateTestUser(db, testutils.WithRoleID(testutils.RoleIDModerator))
	tag := testutils.CreateTestTag(db, "go")

	t.Run("非作者被拒后作者成功", func(t *testing.T) {
		a := testutils.CreateTestArticle(db, author.ID)
		testutils.AttachTestTag(db, a.ID, tag.ID)

		bizErr := svc.Delete(a.ID, stranger.ID, userModel.RoleNameUser)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)

		require.Nil(t, svc.Delete(a.ID, author.ID, userModel.RoleNameUser))

		assert.ErrorIs(t, db.First(&articleModel.Article{}, a.ID).Error, gorm.ErrRecordNotFound)
		// 标签关联一并清除
		assert.Empty(t, linkedTagIDs(t, db, a.ID))
	})

	t.Run("版主可删他人文章", func(t *testing.T) {
		a := testutils.CreateTestArticle(db, author.ID)
		require.Nil(t, svc.Delete(a.ID, moderator.ID, userModel.RoleNameModerator))
	})

	t.Run("文章不存在", func(t *testing.T) {
		bizErr := svc.Delete(99999, moderator.ID, userModel.RoleNameModerator)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

func TestGetAllByUser(t *testing.T) {
	svc, db := newTestService(t)
	u1 := testutils.CreateTestUser(db)
	u2 := testutils.CreateTestUser(db)
	testutils.CreateTestArticle(db, u1.ID)
	testutils.CreateTestArticle(db, u1.ID)
	testutils.CreateTestArticle(db, u2.ID)

	mine, bizErr := svc.GetAllByUser(u1.ID)
	require.Nil(t, bizErr)
	assert.Len(t, mine, 2)

	all, bizErr := svc.GetAll()
	require.Nil(t, bizErr)
	assert.Len(t, all, 3)
}

func TestGetByID(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	tag := testutils.CreateTestTag(db, "go")
	a := testutils.CreateTestArticle(db, author.ID, testutils.WithTitle("Статья"))
	testutils.AttachTestTag(db, a.ID, tag.ID)

	t.Run("存在", func(t *testing.T) {
		resp, bizErr := svc.GetByID(a.ID)
		require.Nil(t, bizErr)
		assert.Equal(t, "Статья", resp.Title)
		require.Len(t, resp.Tags, 1)
		assert.Equal(t, "go", resp.Tags[0].Name)
	})

	t.Run("不存在", func(t *testing.T) {
		_, bizErr := svc.GetByID(99999)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

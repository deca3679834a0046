package tag

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

func newTestService(t *testing.T) (*TagService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	svc := NewTagService(NewTagRepository(db), zap.NewNop().Sugar())
	return svc, db
}

func TestCreate_ModeratorOnly(t *testing.T) {
	svc, _ := newTestService(t)

	req := dto.CreateTagRequest{Name: "golang"}

	t.Run("普通用户被拒", func(t *testing.T) {
		_, bizErr := svc.Create(req, userModel.RoleNameUser)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)
	})

	// 管理员对标签实体也没有特权
	t.Run("管理员被拒", func(t *testing.T) {
		_, bizErr := svc.Create(req, userModel.RoleNameAdmin)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)
	})

	t.Run("版主放行", func(t *testing.T) {
		resp, bizErr := svc.Create(req, userModel.RoleNameModerator)
		require.Nil(t, bizErr)
		assert.Equal(t, "golang", resp.Name)
		assert.NotZero(t, resp.ID)
	})
}

// 名字不是标签的身份，允许同名标签共存
func TestCreate_DuplicateNamesAllowed(t *testing.T) {
	svc, _ := newTestService(t)

	first, bizErr := svc.Create(dto.CreateTagRequest{Name: "go"}, userModel.RoleNameModerator)
	require.Nil(t, bizErr)
	second, bizErr := svc.Create(dto.CreateTagRequest{Name: "go"}, userModel.RoleNameModerator)
	require.Nil(t, bizErr)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestUpdate(t *testing.T) {
	svc, db := newTestService(t)
	existing := testutils.CreateTestTag(db, "old")

	t.Run("普通用户被拒", func(t *testing.T) {
		bizErr := svc.Update(dto.UpdateTagRequest{TagID: existing.ID, Name: "new"}, userModel.RoleNameUser)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)
	})

	t.Run("版主重命名", func(t *testing.T) {
		require.Nil(t, svc.Update(dto.UpdateTagRequest{TagID: existing.ID, Name: "new"}, userModel.RoleNameModerator))

		var stored articleModel.Tag
		require.NoError(t, db.First(&stored, existing.ID).Error)
		assert.Equal(t, "new", stored.Name)
	})

	t.Run("标签不存在", func(t *testing.T) {
		bizErr := svc.Update(dto.UpdateTagRequest{TagID: 99999, Name: "x"}, userModel.RoleNameModerator)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

func TestDelete(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	a := testutils.CreateTestArticle(db, author.ID)
	tag := testutils.CreateTestTag(db, "go")
	testutils.AttachTestTag(db, a.ID, tag.ID)

	t.Run("普通用户被拒", func(t *testing.T) {
		bizErr := svc.Delete(tag.ID, userModel.RoleNameUser)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)
	})

	t.Run("版主删除并清关联", func(t *testing.T) {
		require.Nil(t, svc.Delete(tag.ID, userModel.RoleNameModerator))

		assert.ErrorIs(t, db.First(&articleModel.Tag{}, tag.ID).Error, gorm.ErrRecordNotFound)

		var count int64
		require.NoError(t, db.Model(&articleModel.ArticleTag{}).Where("tag_id = ?", tag.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("标签不存在", func(t *testing.T) {
		bizErr := svc.Delete(99999, userModel.RoleNameModerator)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

func TestGetFull(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	a1 := testutils.CreateTestArticle(db, author.ID, testutils.WithTitle("Первая"))
	a2 := testutils.CreateTestArticle(db, author.ID, testutils.WithTitle("Вторая"))
	tag := testutils.CreateTestTag(db, "go")
	other := testutils.CreateTestTag(db, "web")
	testutils.AttachTestTag(db, a1.ID, tag.ID)
	testutils.AttachTestTag(db, a2.ID, tag.ID)
	testutils.AttachTestTag(db, a2.ID, other.ID)

	full, bizErr := svc.GetFull(tag.ID)
	require.Nil(t, bizErr)
	assert.Equal(t, "go", full.Name)
	require.Len(t, full.Articles, 2)
	assert.Equal(t, "Первая", full.Articles[0].Title)
	// 文章响应里带它自己的完整标签集合
	assert.Len(t, full.Articles[1].Tags, 2)
}

func TestGetAll(t *testing.T) {
	svc, db := newTestService(t)
	testutils.CreateTestTag(db, "go")
	testutils.CreateTestTag(db, "web")

	t.Run("读操作无角色限制", func(t *testing.T) {
		tags, bizErr := svc.GetAll()
		require.Nil(t, bizErr)
		assert.Len(t, tags, 2)
	})

	t.Run("详情列表", func(t *testing.T) {
		full, bizErr := svc.GetAllFull()
		require.Nil(t, bizErr)
		assert.Len(t, full, 2)
		assert.Empty(t, full[0].Articles)
	})
}

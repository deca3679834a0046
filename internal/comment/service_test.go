package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/dto"
	commentModel "github.com/VladimirStepanovN/Blog/internal/model/comment"
	userModel "github.com/VladimirStepanovN/Blog/internal/model/user"
	"github.com/VladimirStepanovN/Blog/internal/response"
	"github.com/VladimirStepanovN/Blog/internal/testutils"
)

func newTestService(t *testing.T) (*CommentService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	svc := NewCommentService(NewCommentRepository(db), zap.NewNop().Sugar())
	return svc, db
}

func TestCreate(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	a := testutils.CreateTestArticle(db, author.ID)

	t.Run("成功", func(t *testing.T) {
		resp, bizErr := svc.Create(dto.CreateCommentRequest{
			Content:   "Отличная статья",
			ArticleID: a.ID,
		}, author.ID)
		require.Nil(t, bizErr)
		assert.Equal(t, a.ID, resp.ArticleID)
		assert.Equal(t, author.ID, resp.UserID)
		assert.NotZero(t, resp.ID)
	})

	t.Run("文章不存在算参数错误", func(t *testing.T) {
		_, bizErr := svc.Create(dto.CreateCommentRequest{
			Content:   "Комментарий",
			ArticleID: 99999,
		}, author.ID)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.InvalidParameter, bizErr.Code)
	})

	t.Run("作者不存在算参数错误", func(t *testing.T) {
		_, bizErr := svc.Create(dto.CreateCommentRequest{
			Content:   "Комментарий",
			ArticleID: a.ID,
		}, 99999)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.InvalidParameter, bizErr.Code)
	})
}

func TestUpdate_Permissions(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	stranger := testutils.CreateTestUser(db)
	moderator := testutils.CreateTestUser(db, testutils.WithRoleID(testutils.RoleIDModerator))
	admin := testutils.CreateTestUser(db, testutils.WithRoleID(testutils.RoleIDAdmin))

	a := testutils.CreateTestArticle(db, author.ID)
	c := testutils.CreateTestComment(db, author.ID, a.ID)

	req := dto.UpdateCommentRequest{CommentID: c.ID, Content: "Исправлено"}

	t.Run("非作者被拒", func(t *testing.T) {
		bizErr := svc.Update(req, stranger.ID, userModel.RoleNameUser)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)
	})

	// 管理员对评论实体没有特权，特权角色是版主
	t.Run("管理员被拒", func(t *testing.T) {
		bizErr := svc.Update(req, admin.ID, userModel.RoleNameAdmin)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)
	})

	t.Run("版主放行", func(t *testing.T) {
		assert.Nil(t, svc.Update(req, moderator.ID, userModel.RoleNameModerator))
	})

	t.Run("作者放行", func(t *testing.T) {
		require.Nil(t, svc.Update(req, author.ID, userModel.RoleNameUser))

		var stored commentModel.Comment
		require.NoError(t, db.First(&stored, c.ID).Error)
		assert.Equal(t, "Исправлено", stored.Content)
	})

	t.Run("评论不存在", func(t *testing.T) {
		missing := req
		missing.CommentID = 99999
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

	a := testutils.CreateTestArticle(db, author.ID)

	t.Run("非作者被拒后作者成功", func(t *testing.T) {
		c := testutils.CreateTestComment(db, author.ID, a.ID)

		bizErr := svc.Delete(c.ID, stranger.ID, userModel.RoleNameUser)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.Forbidden, bizErr.Code)

		require.Nil(t, svc.Delete(c.ID, author.ID, userModel.RoleNameUser))
		assert.ErrorIs(t, db.First(&commentModel.Comment{}, c.ID).Error, gorm.ErrRecordNotFound)
	})

	t.Run("版主可删他人评论", func(t *testing.T) {
		c := testutils.CreateTestComment(db, author.ID, a.ID)
		require.Nil(t, svc.Delete(c.ID, moderator.ID, userModel.RoleNameModerator))
	})

	t.Run("评论不存在", func(t *testing.T) {
		bizErr := svc.Delete(99999, moderator.ID, userModel.RoleNameModerator)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

func TestGetAllByArticle(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	a1 := testutils.CreateTestArticle(db, author.ID)
	a2 := testutils.CreateTestArticle(db, author.ID)
	testutils.CreateTestComment(db, author.ID, a1.ID)
	testutils.CreateTestComment(db, author.ID, a1.ID)
	testutils.CreateTestComment(db, author.ID, a2.ID)

	comments, bizErr := svc.GetAllByArticle(a1.ID)
	require.Nil(t, bizErr)
	assert.Len(t, comments, 2)

	all, bizErr := svc.GetAll()
	require.Nil(t, bizErr)
	assert.Len(t, all, 3)
}

func TestGet(t *testing.T) {
	svc, db := newTestService(t)
	author := testutils.CreateTestUser(db)
	a := testutils.CreateTestArticle(db, author.ID)
	c := testutils.CreateTestComment(db, author.ID, a.ID, testutils.WithCommentContent("Текст"))

	t.Run("存在", func(t *testing.T) {
		resp, bizErr := svc.Get(c.ID)
		require.Nil(t, bizErr)
		assert.Equal(t, "Текст", resp.Content)
	})

	t.Run("不存在", func(t *testing.T) {
		_, bizErr := svc.Get(99999)
		require.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

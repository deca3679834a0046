package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/model/article"
	"github.com/VladimirStepanovN/Blog/internal/model/comment"
	"github.com/VladimirStepanovN/Blog/internal/model/user"
)

// 播种后三个内置角色的固定ID
const (
	RoleIDUser      uint = 1
	RoleIDAdmin     uint = 2
	RoleIDModerator uint = 3
)

// TestPassword 夹具用户的明文密码
const TestPassword = "Test123456"

// SeedTestRoles seeds the three built-in roles with fixed ids.
func SeedTestRoles(t *testing.T, db *gorm.DB) {
	t.Helper()

	seeds := []user.Role{
		{ID: RoleIDUser, RoleName: user.RoleNameUser},
		{ID: RoleIDAdmin, RoleName: user.RoleNameAdmin},
		{ID: RoleIDModerator, RoleName: user.RoleNameModerator},
	}

	for _, seed := range seeds {
		var role user.Role
		if err := db.Where(user.Role{RoleName: seed.RoleName}).Attrs(seed).FirstOrCreate(&role).Error; err != nil {
			t.Fatalf("Failed to seed role %q: %v", seed.RoleName, err)
		}
	}
}

// CreateTestUser creates a test user with unique login/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()
	login := fmt.Sprintf("test_user_%s", uniqueID)
	email := fmt.Sprintf("test_%s@example.com", uniqueID)

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("Failed to hash test password: %v", err))
	}

	testUser := &user.User{
		FirstName:    "Тест",
		LastName:     "Тестов",
		Email:        email,
		Login:        login,
		PasswordHash: string(hash),
		RoleID:       RoleIDUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithLogin sets the login
func WithLogin(login string) UserOption {
	return func(u *user.User) {
		u.Login = login
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// WithRoleID sets the role id
func WithRoleID(roleID uint) UserOption {
	return func(u *user.User) {
		u.RoleID = roleID
	}
}

// CreateTestArticle creates a test article
func CreateTestArticle(db *gorm.DB, authorID uint, opts ...ArticleOption) *article.Article {
	uniqueID := uuid.New().String()
	title := fmt.Sprintf("Test Article %s", uniqueID)

	testArticle := &article.Article{
		Title:     title,
		Content:   "<p>Test content</p>",
		UserID:    authorID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

// WithTitle sets the article title
func WithTitle(title string) ArticleOption {
	return func(a *article.Article) {
		a.Title = title
	}
}

// WithContent sets the article content
func WithContent(content string) ArticleOption {
	return func(a *article.Article) {
		a.Content = content
	}
}

// CreateTestTag creates a test tag
func CreateTestTag(db *gorm.DB, name string) *article.Tag {
	testTag := &article.Tag{
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := db.Create(testTag).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test tag: %v", err))
	}

	return testTag
}

// AttachTestTag links a tag to an article
func AttachTestTag(db *gorm.DB, articleID, tagID uint) {
	link := &article.ArticleTag{
		ArticleID: articleID,
		TagID:     tagID,
		CreatedAt: time.Now(),
	}

	if err := db.Create(link).Error; err != nil {
		panic(fmt.Sprintf("Failed to attach test tag: %v", err))
	}
}

// CreateTestComment creates a test comment
func CreateTestComment(db *gorm.DB, authorID, articleID uint, opts ...CommentOption) *comment.Comment {
	testComment := &comment.Comment{
		Content:   "Test comment",
		UserID:    authorID,
		ArticleID: articleID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(testComment)
	}

	if err := db.Create(testComment).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test comment: %v", err))
	}

	return testComment
}

// CommentOption configures test comment
type CommentOption func(*comment.Comment)

// WithCommentContent sets the comment content
func WithCommentContent(content string) CommentOption {
	return func(c *comment.Comment) {
		c.Content = content
	}
}

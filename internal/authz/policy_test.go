package authz

import (
	"testing"

	"github.com/VladimirStepanovN/Blog/internal/model/user"
)

func uintPtr(v uint) *uint {
	return &v
}

// TestDecide 测试统一授权判定
func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		actorRole string
		actorID   uint
		target    Target
		expected  Decision
	}{
		// 目标不存在
		{"missing article", user.RoleNameModerator, 1, Target{Kind: KindArticle, Exists: false}, DecisionNotFound},
		{"missing user", user.RoleNameAdmin, 1, Target{Kind: KindUser, Exists: false}, DecisionNotFound},

		// 特权角色无条件放行
		{"moderator on others article", user.RoleNameModerator, 1, Target{Kind: KindArticle, Exists: true, OwnerID: uintPtr(2)}, DecisionAllowed},
		{"moderator on others comment", user.RoleNameModerator, 1, Target{Kind: KindComment, Exists: true, OwnerID: uintPtr(99)}, DecisionAllowed},
		{"admin on other user", user.RoleNameAdmin, 1, Target{Kind: KindUser, Exists: true, OwnerID: uintPtr(2)}, DecisionAllowed},

		// 特权角色不跨实体类型
		{"admin on others article", user.RoleNameAdmin, 1, Target{Kind: KindArticle, Exists: true, OwnerID: uintPtr(2)}, DecisionForbidden},
		{"moderator on other user", user.RoleNameModerator, 1, Target{Kind: KindUser, Exists: true, OwnerID: uintPtr(2)}, DecisionForbidden},

		// 基础角色只能动自己的东西
		{"owner edits own article", user.RoleNameUser, 7, Target{Kind: KindArticle, Exists: true, OwnerID: uintPtr(7)}, DecisionAllowed},
		{"user edits others article", user.RoleNameUser, 7, Target{Kind: KindArticle, Exists: true, OwnerID: uintPtr(8)}, DecisionForbidden},
		{"author deletes own comment", user.RoleNameUser, 3, Target{Kind: KindComment, Exists: true, OwnerID: uintPtr(3)}, DecisionAllowed},
		{"user deletes others comment", user.RoleNameUser, 3, Target{Kind: KindComment, Exists: true, OwnerID: uintPtr(4)}, DecisionForbidden},
		{"user edits self", user.RoleNameUser, 5, Target{Kind: KindUser, Exists: true, OwnerID: uintPtr(5)}, DecisionAllowed},
		{"user edits other user", user.RoleNameUser, 5, Target{Kind: KindUser, Exists: true, OwnerID: uintPtr(6)}, DecisionForbidden},

		// 无归属目标对基础角色永远拒绝
		{"user on ownerless target", user.RoleNameUser, 5, Target{Kind: KindTag, Exists: true, OwnerID: nil}, DecisionForbidden},

		// 未知角色一律拒绝
		{"unknown role", "anonymous", 7, Target{Kind: KindArticle, Exists: true, OwnerID: uintPtr(7)}, DecisionForbidden},
		{"empty role", "", 7, Target{Kind: KindArticle, Exists: true, OwnerID: uintPtr(7)}, DecisionForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Decide(tt.actorRole, tt.actorID, tt.target)
			if result != tt.expected {
				t.Errorf("Decide(%q, %d, %+v) = %v, want %v", tt.actorRole, tt.actorID, tt.target, result, tt.expected)
			}
		})
	}
}

// TestElevatedRoleFor 测试实体类型与特权角色的映射
func TestElevatedRoleFor(t *testing.T) {
	tests := []struct {
		kind     EntityKind
		expected string
	}{
		{KindArticle, user.RoleNameModerator},
		{KindComment, user.RoleNameModerator},
		{KindTag, user.RoleNameModerator},
		{KindUser, user.RoleNameAdmin},
	}

	for _, tt := range tests {
		if got := ElevatedRoleFor(tt.kind); got != tt.expected {
			t.Errorf("ElevatedRoleFor(%q) = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

// TestCanManageTags 标签管理只认版主角色
func TestCanManageTags(t *testing.T) {
	tests := []struct {
		role     string
		expected bool
	}{
		{user.RoleNameModerator, true},
		{user.RoleNameAdmin, false},
		{user.RoleNameUser, false},
		{"", false},
	}

	for _, tt := range tests {
		if got := CanManageTags(tt.role); got != tt.expected {
			t.Errorf("CanManageTags(%q) = %v, want %v", tt.role, got, tt.expected)
		}
	}
}

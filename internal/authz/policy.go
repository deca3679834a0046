// Package authz 统一的变更授权策略
// 文章/评论/用户的 Update 与 Delete 共用同一条判定规则，
// 避免各实体服务各自复制一份角色判断后悄悄分叉
package authz

import (
	"github.com/VladimirStepanovN/Blog/internal/model/user"
)

// EntityKind 目标实体类型
type EntityKind string

const (
	KindArticle EntityKind = "article"
	KindComment EntityKind = "comment"
	KindUser    EntityKind = "user"
	KindTag     EntityKind = "tag"
)

// elevatedRoleMap 每类实体的特权角色：
// 内容类（文章/评论/标签）由版主管理，账号类由管理员管理
var elevatedRoleMap = map[EntityKind]string{
	KindArticle: user.RoleNameModerator,
	KindComment: user.RoleNameModerator,
	KindTag:     user.RoleNameModerator,
	KindUser:    user.RoleNameAdmin,
}

// ElevatedRoleFor 获取实体类型对应的特权角色
func ElevatedRoleFor(kind EntityKind) string {
	return elevatedRoleMap[kind]
}

// Decision 授权判定结果
type Decision int

const (
	// DecisionAllowed 允许执行变更
	DecisionAllowed Decision = iota
	// DecisionNotFound 目标实体不存在
	DecisionNotFound
	// DecisionForbidden 目标存在但无权限
	DecisionForbidden
)

// Target 变更目标
type Target struct {
	Kind   EntityKind
	Exists bool
	// 目标的归属者ID；用户目标传其自身ID，标签无归属传 nil
	OwnerID *uint
}

// Decide 判定发起人能否对目标执行 Update/Delete
// 规则（对所有实体类型一致）：
//  1. 目标不存在 → NotFound
//  2. 发起人角色为该实体类型的特权角色 → 无条件允许
//  3. 发起人为基础角色（Пользователь）且是目标的归属者 → 允许
//  4. 其余情况 → Forbidden
func Decide(actorRole string, actorID uint, target Target) Decision {
	if !target.Exists {
		return DecisionNotFound
	}

	if actorRole == ElevatedRoleFor(target.Kind) {
		return DecisionAllowed
	}

	if actorRole == user.RoleNameUser && target.OwnerID != nil && *target.OwnerID == actorID {
		return DecisionAllowed
	}

	return DecisionForbidden
}

// CanManageTags 标签的增删改只看角色，不存在归属概念
func CanManageTags(actorRole string) bool {
	return actorRole == user.RoleNameModerator
}

// Package role 角色解析与播种
package role

import (
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/model/user"
)

// seedRoles 冷启动时播种的三个内置角色
// ID 按旧版数据约定固定：1=Пользователь, 2=Администратор, 3=Модератор
var seedRoles = []user.Role{
	{ID: 1, RoleName: user.RoleNameUser},
	{ID: 2, RoleName: user.RoleNameAdmin},
	{ID: 3, RoleName: user.RoleNameModerator},
}

// Resolver 角色解析器
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// GetRoleByID 根据ID获取角色
func (r *Resolver) GetRoleByID(id uint) (*user.Role, error) {
	var role user.Role
	err := r.db.First(&role, id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetRoleByName 根据名称获取角色
func (r *Resolver) GetRoleByName(name string) (*user.Role, error) {
	var role user.Role
	err := r.db.Where("role_name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// EnsureSeeded 按名称幂等播种内置角色
// 逐个 FirstOrCreate，已存在的行（包括ID不同的部分播种）不会被重复插入，
// 并发冷启动下也不会产生重复行
func (r *Resolver) EnsureSeeded() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, seed := range seedRoles {
			var role user.Role
			err := tx.Where(user.Role{RoleName: seed.RoleName}).
				Attrs(user.Role{ID: seed.ID}).
				FirstOrCreate(&role).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetDefaultUserRole 获取注册时默认分配的基础角色
// 角色表为空时先播种再返回
func (r *Resolver) GetDefaultUserRole() (*user.Role, error) {
	role, err := r.GetRoleByName(user.RoleNameUser)
	if err == nil {
		return role, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err := r.EnsureSeeded(); err != nil {
		return nil, err
	}

	return r.GetRoleByName(user.RoleNameUser)
}

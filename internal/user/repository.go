package user

import (
	"gorm.io/gorm"

	userModel "github.com/VladimirStepanovN/Blog/internal/model/user"
)

// UserRepository 用户仓储层
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *userModel.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Preload("Role").First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByLogin 根据登录名查找用户
func (r *UserRepository) GetByLogin(login string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Preload("Role").Where("login = ?", login).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail 根据邮箱查找用户
func (r *UserRepository) GetByEmail(email string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Preload("Role").Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List() ([]userModel.User, error) {
	var users []userModel.User
	err := r.db.Preload("Role").Order("id ASC").Find(&users).Error
	return users, err
}

// Update 只覆盖指定字段，不整行替换，避免冲掉角色等关系列
func (r *UserRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&userModel.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.db.Delete(&userModel.User{}, id).Error
}

// Package session 刷新令牌存储
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VladimirStepanovN/Blog/internal/database"
)

const (
	// RefreshToken 有效期：7天
	RefreshTokenExpiration = 7 * 24 * time.Hour
	// RefreshToken Redis key 前缀
	RefreshTokenPrefix = "refresh_token:"
)

// TokenData 令牌数据结构
type TokenData struct {
	UserID uint
	Login  string
	Email  string
	Role   string
}

// Store 刷新令牌数据访问层
type Store struct {
	redis *database.RedisClient
}

// NewStore 创建刷新令牌仓库实例
func NewStore(redisClient *database.RedisClient) *Store {
	return &Store{
		redis: redisClient,
	}
}

// Create 创建刷新令牌并存储到 Redis
func (s *Store) Create(ctx context.Context, token string, data TokenData) error {
	key := RefreshTokenPrefix + token

	tokenData := map[string]interface{}{
		"user_id": data.UserID,
		"login":   data.Login,
		"email":   data.Email,
		"role":    data.Role,
	}

	if err := s.redis.HSet(ctx, key, tokenData).Err(); err != nil {
		return fmt.Errorf("存储令牌失败: %w", err)
	}

	// 设置过期时间
	if err := s.redis.Expire(ctx, key, RefreshTokenExpiration).Err(); err != nil {
		return fmt.Errorf("设置令牌过期时间失败: %w", err)
	}

	return nil
}

// Get 根据令牌读取会话数据，令牌不存在或已过期返回 redis.Nil
func (s *Store) Get(ctx context.Context, token string) (*TokenData, error) {
	key := RefreshTokenPrefix + token

	values, err := s.redis.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("读取令牌失败: %w", err)
	}
	if len(values) == 0 {
		return nil, redis.Nil
	}

	userID, err := strconv.ParseUint(values["user_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("令牌数据损坏: %w", err)
	}

	return &TokenData{
		UserID: uint(userID),
		Login:  values["login"],
		Email:  values["email"],
		Role:   values["role"],
	}, nil
}

// Delete 删除刷新令牌（登出）
func (s *Store) Delete(ctx context.Context, token string) error {
	key := RefreshTokenPrefix + token

	if err := s.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("删除令牌失败: %w", err)
	}

	return nil
}

package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/VladimirStepanovN/Blog/internal/dto"
	"github.com/VladimirStepanovN/Blog/internal/pkg"
	"github.com/VladimirStepanovN/Blog/internal/response"
)

// extractToken 从 cookie 或 Authorization header 中取出 token
func extractToken(c *gin.Context) (string, error) {
	// 优先从 cookie 中获取 access_token
	tokenString, err := c.Cookie("access_token")
	if err == nil && tokenString != "" {
		return tokenString, nil
	}

	// cookie 中没有时尝试 Authorization header
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("未提供认证令牌")
	}

	// 验证格式: Bearer <token>
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:], nil
	}

	return "", fmt.Errorf("认证格式错误")
}

func parseToken(c *gin.Context) (*pkg.Claims, error) {
	tokenString, err := extractToken(c)
	if err != nil {
		return nil, err
	}

	claims, err := pkg.ParseAccessToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("无效的认证令牌")
	}
	return claims, nil
}

// JWTAuth JWT 认证中间件（必需认证）
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", claims.UserID)
		c.Set("login", claims.Login)
		c.Set("email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// OptionalJWTAuth 可选认证，带有效 token 时解析出用户信息，没有也放行
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err == nil && claims != nil {
			c.Set("user_id", claims.UserID)
			c.Set("login", claims.Login)
			c.Set("email", claims.Email)
			c.Set("user_role", claims.Role)
		}
		c.Next()
	}
}

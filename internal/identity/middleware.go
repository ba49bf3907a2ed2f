// Package identity 解析上游网关注入的调用方身份。
// 认证与令牌签发由独立的用户服务完成，这里只消费其结果：
// 网关校验通过后以请求头透传用户标识与角色。
package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"
)

const (
	userIDKey = "identity.user_id"
	roleKey   = "identity.role"

	// HeaderUserID 网关注入的用户标识请求头
	HeaderUserID = "X-User-ID"
	// HeaderUserRole 网关注入的用户角色请求头
	HeaderUserRole = "X-User-Role"

	// RoleAdmin 管理员角色
	RoleAdmin = "ADMIN"
)

// Middleware 要求请求携带网关注入的用户标识，否则返回 401
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			response.ErrorWithStatus(c, http.StatusUnauthorized, "unauthenticated", "")
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Set(roleKey, c.GetHeader(HeaderUserRole))
		c.Next()
	}
}

// RequireAdmin 仅放行管理员，其余返回 403
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.ErrorWithStatus(c, http.StatusForbidden, "forbidden", "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID 当前请求的用户标识
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// IsAdmin 当前请求是否来自管理员
func IsAdmin(c *gin.Context) bool {
	return c.GetString(roleKey) == RoleAdmin
}

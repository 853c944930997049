package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"bloghub/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys for the authenticated principal.
const (
	CtxUserID  = "user_id"
	CtxIsAdmin = "is_admin"
)

// authenticate runs the base token check. On success the decoded principal
// (id, isAdmin) is attached to the context; on failure the pipeline is
// aborted and false returned.
func authenticate(c *gin.Context, tm *auth.TokenManager) bool {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
		return false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := tm.Parse(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return false
	}

	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxIsAdmin, claims.IsAdmin)
	return true
}

// Authenticated 验证 token 是否有效
func Authenticated(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, tm)
	}
}

// SelfOnly allows only the user addressed by the :id path parameter.
func SelfOnly(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, tm) {
			return
		}
		if PathID(c) != c.GetUint64(CtxUserID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you are not allowed, only user himself"})
		}
	}
}

// SelfOrAdmin allows the addressed user or any admin.
func SelfOrAdmin(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, tm) {
			return
		}
		if PathID(c) != c.GetUint64(CtxUserID) && !c.GetBool(CtxIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you are not allowed, only user himself or admin"})
		}
	}
}

// AdminOnly allows only admins.
func AdminOnly(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, tm) {
			return
		}
		if !c.GetBool(CtxIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you are not allowed, only admin allowed"})
		}
	}
}

// PathID parses the :id path parameter; 0 on malformed input.
func PathID(c *gin.Context) uint64 {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	return id
}

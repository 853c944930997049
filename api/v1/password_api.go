package v1

import (
	"net/http"
	"strconv"

	"bloghub/api/v1/request"
	"bloghub/internal/metrics"
	"bloghub/service"

	"github.com/gin-gonic/gin"
)

// PasswordAPI 聚合密码重置相关的 HTTP Handler。
type PasswordAPI struct {
	auth *service.AuthService
}

// NewPasswordAPI wires the auth service into the reset handlers.
func NewPasswordAPI(auth *service.AuthService) *PasswordAPI {
	return &PasswordAPI{auth: auth}
}

// SendResetLink mails a reset link. The response is the same whether or not
// the address is registered.
func (a *PasswordAPI) SendResetLink(c *gin.Context) {
	var req request.ResetLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.auth.SendResetLink(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password reset link sent to your email, please check your inbox"})
}

// CheckResetLink lets the client validate a link before showing the form.
func (a *PasswordAPI) CheckResetLink(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if err := a.auth.CheckResetLink(userID, c.Param("token")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "valid url"})
}

// ResetPassword consumes the token and replaces the password hash.
func (a *PasswordAPI) ResetPassword(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		metrics.IncPasswordReset("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var req request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncPasswordReset("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.auth.ResetPassword(userID, c.Param("token"), req.Password); err != nil {
		metrics.IncPasswordReset("failed")
		respondError(c, err)
		return
	}
	metrics.IncPasswordReset("success")
	c.JSON(http.StatusOK, gin.H{"message": "password reset successfully"})
}

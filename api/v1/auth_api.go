package v1

import (
	"net/http"
	"strconv"

	"bloghub/api/v1/request"
	"bloghub/internal/metrics"
	"bloghub/service"

	"github.com/gin-gonic/gin"
)

// AuthAPI 聚合注册 / 登录 / 邮箱验证相关的 HTTP Handler。
type AuthAPI struct {
	auth *service.AuthService
}

// NewAuthAPI wires the auth service into the HTTP handlers.
func NewAuthAPI(auth *service.AuthService) *AuthAPI {
	return &AuthAPI{auth: auth}
}

// Register handles new account creation. Only a generic acknowledgment is
// returned; the caller logs in to obtain further state.
func (a *AuthAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncRegister("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.auth.Register(c.Request.Context(), req.Email, req.Username, req.Password); err != nil {
		metrics.IncRegister("failed")
		respondError(c, err)
		return
	}
	metrics.IncRegister("success")
	c.JSON(http.StatusCreated, gin.H{"message": "we sent you an email, please verify your email address"})
}

// Login validates credentials and returns a session token with the public
// profile projection. Unverified accounts only get a verify prompt.
func (a *AuthAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, user, err := a.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.IncLogin("failed")
		respondError(c, err)
		return
	}
	metrics.IncLogin("success")
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// VerifyAccount consumes the (userId, token) pair from the emailed link.
func (a *AuthAPI) VerifyAccount(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		metrics.IncVerify("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if err := a.auth.VerifyAccount(userID, c.Param("token")); err != nil {
		metrics.IncVerify("failed")
		respondError(c, err)
		return
	}
	metrics.IncVerify("success")
	c.JSON(http.StatusOK, gin.H{"message": "your account verified"})
}

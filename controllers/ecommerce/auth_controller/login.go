package auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// Login godoc
// @Summary Log in with email and password
// @Description Email match is case-insensitive. Sets the auth_token cookie and returns the token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Invalid email or password"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid login request", utils.FieldErrors(err)))
		return
	}

	user, token, err := auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		logger.Error("[auth.login] token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	client := utils.DescribeClient(c)
	logger.Info("[auth.login]",
		zap.String("user", user.ID),
		zap.Bool("admin", user.IsAdmin),
		zap.String("ip", client.IPAddress),
		zap.String("device", client.DeviceType),
		zap.String("browser", client.Browser),
		zap.String("os", client.OS),
	)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, token, cookieMaxAge, "/", "", secureCookie, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}

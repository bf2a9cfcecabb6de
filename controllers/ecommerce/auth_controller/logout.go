package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
)

// Logout godoc
// @Summary Log out
// @Description Clears the auth_token cookie. The cart and filters stay with the visitor session.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	// must match name, path and flags used at login
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", secureCookie, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}

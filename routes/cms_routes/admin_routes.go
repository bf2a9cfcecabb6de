package cms_routes

import (
	"github.com/gin-gonic/gin"
	admin_controller "github.com/houranii/tyreshop/controllers/cms/admin_controller"
)

// SetupAdminRoutes registers the dashboard and activity log. rg must
// already carry the admin guard.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", admin_controller.GetDashboard)

	// Activity logs
	rg.GET("/activity", admin_controller.GetAllAdminActivityLogs)
	rg.GET("/activity/me", admin_controller.GetMyActivityLogs)
}

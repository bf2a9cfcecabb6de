package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
)

// ActivityResourceIDKey lets create handlers report the id they assigned.
const ActivityResourceIDKey = "activityResourceID"

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

var pathToResourceType = map[string]string{
	"products":  models.ResourceTypeProduct,
	"orders":    models.ResourceTypeOrder,
	"locations": models.ResourceTypeLocation,
	"customers": models.ResourceTypeCustomer,
}

var methodToActionVerb = map[string]string{
	http.MethodPost:   models.ActionCreated,
	http.MethodPatch:  models.ActionUpdated,
	http.MethodPut:    models.ActionUpdated,
	http.MethodDelete: models.ActionDeleted,
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLogging records admin mutations after the handler has run.
// Must be used after RequireAdmin.
func ActivityLogging(activity *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, mutating := methodToActionVerb[c.Request.Method]
		resourceType := extractResourceType(c.FullPath())
		if !mutating || resourceType == "" {
			c.Next()
			return
		}

		c.Next()

		admin, _ := GetUser(c)
		resourceID := c.Param("id")
		if id := c.GetString(ActivityResourceIDKey); id != "" {
			resourceID = id
		}

		status := c.Writer.Status()
		errMsg := ""
		if status < 200 || status >= 300 {
			errMsg = "Request failed with status " + http.StatusText(status)
		}

		activity.LogActivity(services.LogActivityRequest{
			AdminID:      admin.ID,
			AdminEmail:   admin.Email,
			Action:       verb,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			StatusCode:   status,
			ErrorMessage: errMsg,
			Client:       utils.DescribeClient(c),
		})
	}
}

// extractResourceType finds the collection a route template acts on,
// e.g. "/api/v1/admin/orders/:id/status" → "order".
func extractResourceType(route string) string {
	parts := strings.Split(route, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if rt, ok := pathToResourceType[parts[i]]; ok {
			return rt
		}
	}
	return ""
}

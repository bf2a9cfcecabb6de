package services

import (
	"testing"

	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestActivityLog_RecordsNewestFirst(t *testing.T) {
	svc := NewActivityLogService(10, zap.NewNop())

	svc.LogActivity(LogActivityRequest{AdminID: "admin", AdminEmail: "admin@tirestore.com", Action: models.ActionCreated, ResourceType: models.ResourceTypeProduct, ResourceID: "13", StatusCode: 201})
	failed := svc.LogActivity(LogActivityRequest{
		AdminID:      "admin",
		Action:       models.ActionUpdated,
		ResourceType: models.ResourceTypeOrder,
		ResourceID:   "ORD-1",
		StatusCode:   404,
		ErrorMessage: "Not Found",
		Client:       utils.ClientInfo{IPAddress: "203.0.113.7", Browser: "Firefox"},
	})

	assert.Equal(t, "updated_order", failed.Action)
	assert.Equal(t, models.StatusFailed, failed.Status)
	assert.NotEmpty(t, failed.ID)

	all := svc.List(models.ActivityFilter{})
	require.Len(t, all, 2)
	assert.Equal(t, "ORD-1", all[0].ResourceID)
	assert.Equal(t, "Firefox", all[0].Browser)
	assert.Equal(t, models.StatusSuccess, all[1].Status)
	assert.Equal(t, "created_product", all[1].Action)

	products := svc.List(models.ActivityFilter{ResourceType: models.ResourceTypeProduct})
	require.Len(t, products, 1)
	assert.Equal(t, "13", products[0].ResourceID)

	assert.Empty(t, svc.List(models.ActivityFilter{AdminID: "someone-else"}))
}

func TestActivityLog_DropsOldestPastCapacity(t *testing.T) {
	svc := NewActivityLogService(3, zap.NewNop())
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		svc.LogActivity(LogActivityRequest{Action: models.ActionDeleted, ResourceType: models.ResourceTypeLocation, ResourceID: id})
	}

	got := svc.List(models.ActivityFilter{})
	require.Len(t, got, 3)
	assert.Equal(t, "5", got[0].ResourceID)
	assert.Equal(t, "3", got[2].ResourceID)
}

package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

const DefaultActivityCapacity = 500

// ActivityLogService keeps the most recent admin actions in memory.
type ActivityLogService struct {
	mu       sync.RWMutex
	entries  []models.ActivityLog // newest first
	capacity int
	now      func() time.Time
	logger   *zap.Logger
}

func NewActivityLogService(capacity int, logger *zap.Logger) *ActivityLogService {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &ActivityLogService{capacity: capacity, now: time.Now, logger: logger}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	AdminID      string
	AdminEmail   string
	Action       string // created, updated, deleted
	ResourceType string
	ResourceID   string
	StatusCode   int
	ErrorMessage string
	Client       utils.ClientInfo
}

// LogActivity records one admin action. A non-empty ErrorMessage marks it
// failed.
func (s *ActivityLogService) LogActivity(req LogActivityRequest) models.ActivityLog {
	status := models.StatusSuccess
	if req.ErrorMessage != "" {
		status = models.StatusFailed
	}

	entry := models.ActivityLog{
		ID:           uuid.Must(uuid.NewV7()).String(),
		AdminID:      req.AdminID,
		AdminEmail:   req.AdminEmail,
		Action:       req.Action + "_" + req.ResourceType,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Status:       status,
		StatusCode:   req.StatusCode,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    req.Client.IPAddress,
		UserAgent:    req.Client.UserAgent,
		DeviceType:   req.Client.DeviceType,
		Browser:      req.Client.Browser,
		OS:           req.Client.OS,
		CreatedAt:    s.now(),
	}

	s.mu.Lock()
	if len(s.entries) >= s.capacity {
		s.entries = s.entries[:s.capacity-1]
	}
	s.entries = append([]models.ActivityLog{entry}, s.entries...)
	s.mu.Unlock()

	s.logger.Info("[activity-log] "+entry.Action,
		zap.String("resource_id", entry.ResourceID),
		zap.String("admin", entry.AdminEmail),
		zap.String("status", entry.Status),
		zap.Int("code", entry.StatusCode),
	)
	return entry
}

// List returns matching entries, newest first.
func (s *ActivityLogService) List(f models.ActivityFilter) []models.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ActivityLog, 0, len(s.entries))
	for _, e := range s.entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/houranii/tyreshop/filter"
	"github.com/houranii/tyreshop/metrics"
	"github.com/houranii/tyreshop/models"
	"go.uber.org/zap"
)

// VisitorSession is everything one browser accumulates: filter state,
// cart and checkout progress. Callers must hold the session through Do.
type VisitorSession struct {
	ID string

	mu       sync.Mutex
	filter   *filter.Session
	cart     *Cart
	checkout *Wizard
	lastSeen time.Time
}

// SessionState is the view of a visitor session available inside Do.
type SessionState struct {
	Filter   *filter.Session
	Cart     *Cart
	Checkout *Wizard
}

// Do runs fn with exclusive access to the session.
func (v *VisitorSession) Do(fn func(s SessionState) error) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return fn(SessionState{Filter: v.filter, Cart: v.cart, Checkout: v.checkout})
}

// SessionService keeps visitor sessions in memory and expires idle ones.
type SessionService struct {
	mu        sync.Mutex
	sessions  map[string]*VisitorSession
	ttl       time.Duration
	now       func() time.Time
	newFilter func() *filter.Session
	logger    *zap.Logger
}

func NewSessionService(catalog *CatalogService, ttl time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions:  make(map[string]*VisitorSession),
		ttl:       ttl,
		now:       time.Now,
		newFilter: catalog.NewFilterSession,
		logger:    logger,
	}
}

// Resolve returns the live session for id, or starts a new one when id
// is empty, unknown or expired. created reports the latter.
func (s *SessionService) Resolve(id string) (sess *VisitorSession, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.sessions[id]; ok {
		if now.Sub(sess.lastSeen) < s.ttl {
			sess.lastSeen = now
			return sess, false
		}
		delete(s.sessions, id)
	}

	sess = &VisitorSession{
		ID:       uuid.Must(uuid.NewV7()).String(),
		filter:   s.newFilter(),
		cart:     NewCart(),
		checkout: NewWizard(),
		lastSeen: now,
	}
	s.sessions[sess.ID] = sess
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	s.logger.Debug("[session] created", zap.String("session", sess.ID))
	return sess, true
}

func (s *SessionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// went.
func (s *SessionService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) >= s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *SessionService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Info("[session] expired idle sessions", zap.Int("removed", n), zap.Int("active", s.Count()))
			}
		}
	}
}

// ── Filter helpers ───────────────────────────────────────────────────────────

// FilterState renders a session's filter for the API, refreshing it first
// if the catalog changed underneath.
func FilterState(fs *filter.Session) models.FilterStateResponse {
	if fs.Stale() {
		metrics.FilterRecomputes.WithLabelValues("catalog").Inc()
	}
	res := fs.Current()
	products := make([]models.StorefrontTyreResponse, len(res.Tyres))
	for i, t := range res.Tyres {
		products[i] = models.NewStorefrontTyreResponse(t)
	}
	return models.FilterStateResponse{
		Selection:        fs.Selection(),
		AvailableOptions: res.Options,
		VehicleTypes:     models.VehicleTypes,
		Products:         products,
		Total:            len(res.Tyres),
	}
}

// RecordRecompute tracks a facet change for metrics.
func RecordRecompute(trigger string, res filter.Result) {
	metrics.FilterRecomputes.WithLabelValues(trigger).Inc()
	metrics.FilterResultSize.Observe(float64(len(res.Tyres)))
}

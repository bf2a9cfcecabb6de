package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/houranii/tyreshop/metrics"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
	"github.com/houranii/tyreshop/utils"
)

var (
	ErrNotAuthenticated     = errors.New("login required to check out")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrNoLocation           = errors.New("select a location before checking out")
	ErrWrongStep            = errors.New("not allowed at the current checkout step")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrValidation           = errors.New("validation failed")
)

// FormError reports per-field problems with a submitted form.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return strings.Join(parts, "; ")
}

func (e *FormError) Unwrap() error { return ErrValidation }

// ── Wizard ───────────────────────────────────────────────────────────────────

// Wizard walks a visitor through shipping, payment and confirmation.
// Card details are checked and then dropped; only the last four digits
// are kept.
type Wizard struct {
	step      models.CheckoutStep
	shipping  models.ShippingDetails
	prefilled bool
	method    models.PaymentMethod
	cardLast4 string
}

func NewWizard() *Wizard {
	return &Wizard{step: models.StepShipping, method: models.PayCreditCard}
}

func (w *Wizard) Step() models.CheckoutStep { return w.step }

func (w *Wizard) Shipping() models.ShippingDetails { return w.shipping }

// Prefill copies contact details from the user the first time the
// wizard sees them.
func (w *Wizard) Prefill(u models.User) {
	if w.prefilled {
		return
	}
	w.prefilled = true
	w.shipping.FullName = u.FullName()
	w.shipping.Email = u.Email
	w.shipping.Phone = u.Phone
	if u.Address != nil {
		w.shipping.Address = u.Address.String()
	}
}

func (w *Wizard) SubmitShipping(d models.ShippingDetails) error {
	if w.step != models.StepShipping {
		return fmt.Errorf("shipping at %s: %w", w.step, ErrWrongStep)
	}
	d.FullName = strings.TrimSpace(d.FullName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	if err := utils.Validate.Struct(d); err != nil {
		return &FormError{Fields: utils.FieldErrors(err)}
	}
	w.shipping = d
	w.prefilled = true
	w.step = models.StepPayment
	return nil
}

func (w *Wizard) SubmitPayment(p models.PaymentDetails) error {
	if w.step != models.StepPayment {
		return fmt.Errorf("payment at %s: %w", w.step, ErrWrongStep)
	}
	if !validPaymentMethod(p.Method) {
		return fmt.Errorf("%q: %w", p.Method, ErrInvalidPaymentMethod)
	}

	last4 := ""
	if p.Method == models.PayCreditCard {
		if p.Card == nil {
			return &FormError{Fields: map[string]string{"card": "This field is required"}}
		}
		if err := utils.Validate.Struct(p.Card); err != nil {
			fields := map[string]string{}
			for k, v := range utils.FieldErrors(err) {
				fields["card."+k] = v
			}
			return &FormError{Fields: fields}
		}
		number := utils.NormalizeCardNumber(p.Card.Number)
		last4 = number[len(number)-4:]
	}

	w.method = p.Method
	w.cardLast4 = last4
	w.step = models.StepConfirmation
	return nil
}

// Back moves one step towards shipping. It is a no-op on the first step.
func (w *Wizard) Back() {
	switch w.step {
	case models.StepPayment:
		w.step = models.StepShipping
	case models.StepConfirmation:
		w.step = models.StepPayment
	}
}

func (w *Wizard) Reset() {
	*w = *NewWizard()
}

func validPaymentMethod(m models.PaymentMethod) bool {
	for _, pm := range models.PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// ── Service ──────────────────────────────────────────────────────────────────

type CheckoutService struct {
	orders    *store.OrderStore
	users     *store.UserStore
	locations *store.LocationStore
	now       func() time.Time
}

func NewCheckoutService(s *store.Store) *CheckoutService {
	return &CheckoutService{orders: s.Orders, users: s.Users, locations: s.Locations, now: time.Now}
}

// Ready checks everything a checkout needs before the first step.
func (s *CheckoutService) Ready(user *models.User, cart *Cart) error {
	if user == nil {
		return ErrNotAuthenticated
	}
	if cart.IsEmpty() {
		return ErrEmptyCart
	}
	if _, ok := cart.LocationID(); !ok {
		return ErrNoLocation
	}
	return nil
}

func (s *CheckoutService) State(user *models.User, cart *Cart, w *Wizard) (models.CheckoutState, error) {
	if err := s.Ready(user, cart); err != nil {
		return models.CheckoutState{}, err
	}
	w.Prefill(*user)

	state := models.CheckoutState{
		Step:      w.step,
		Shipping:  w.shipping,
		Method:    w.method,
		CardLast4: w.cardLast4,
		Cart:      cart.Response(),
	}
	if id, ok := cart.LocationID(); ok {
		if loc, err := s.locations.Get(id); err == nil {
			state.LocationName = loc.Name
		}
	}
	return state, nil
}

// PlaceOrder turns the confirmed cart into a pending order, then empties
// the cart and restarts the wizard.
func (s *CheckoutService) PlaceOrder(user *models.User, cart *Cart, w *Wizard) (models.Order, error) {
	if err := s.Ready(user, cart); err != nil {
		return models.Order{}, err
	}
	if w.step != models.StepConfirmation {
		return models.Order{}, fmt.Errorf("place order at %s: %w", w.step, ErrWrongStep)
	}

	locID, _ := cart.LocationID()
	loc, err := s.locations.Get(locID)
	if err != nil {
		return models.Order{}, err
	}

	items := cart.Items()
	lines := make([]models.OrderItem, len(items))
	for i, it := range items {
		price := it.Tyre.EffectivePrice()
		lines[i] = models.OrderItem{
			ID:       fmt.Sprintf("ITEM-%d", i+1),
			TyreID:   it.Tyre.ID,
			Name:     fmt.Sprintf("%s %s %s", it.Tyre.Brand, it.Tyre.Model, it.Tyre.Size),
			Quantity: it.Quantity,
			Price:    price,
			Total:    price * float64(it.Quantity),
		}
	}

	method := w.method.Label()
	if w.cardLast4 != "" {
		method = fmt.Sprintf("%s (ending in %s)", method, w.cardLast4)
	}

	now := s.now()
	order, err := s.orders.Create(models.Order{
		UserID:        user.ID,
		CustomerName:  w.shipping.FullName,
		Email:         w.shipping.Email,
		Phone:         w.shipping.Phone,
		Address:       w.shipping.Address,
		Items:         lines,
		ServiceType:   cart.ServiceType(),
		LocationID:    loc.ID,
		LocationName:  loc.Name,
		Total:         cart.Total(),
		Status:        models.OrderPending,
		PaymentMethod: method,
		PaymentStatus: models.PaymentPending,
		Notes:         w.shipping.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	if err := s.users.AddOrder(user.ID, order.ID); err != nil {
		return models.Order{}, err
	}

	cart.Clear()
	w.Reset()
	metrics.OrdersPlaced.Inc()
	return order, nil
}

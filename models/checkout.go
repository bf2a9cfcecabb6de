package models

type CheckoutStep string

const (
	StepShipping     CheckoutStep = "shipping"
	StepPayment      CheckoutStep = "payment"
	StepConfirmation CheckoutStep = "confirmation"
)

type PaymentMethod string

const (
	PayCreditCard   PaymentMethod = "credit_card"
	PayPayPal       PaymentMethod = "paypal"
	PayApplePay     PaymentMethod = "apple_pay"
	PayGooglePay    PaymentMethod = "google_pay"
	PayBankTransfer PaymentMethod = "bank_transfer"
)

var PaymentMethods = []PaymentMethod{PayCreditCard, PayPayPal, PayApplePay, PayGooglePay, PayBankTransfer}

// Label is the human readable name stored on the order.
func (p PaymentMethod) Label() string {
	switch p {
	case PayCreditCard:
		return "Credit Card"
	case PayPayPal:
		return "PayPal"
	case PayApplePay:
		return "Apple Pay"
	case PayGooglePay:
		return "Google Pay"
	case PayBankTransfer:
		return "Bank Transfer"
	}
	return string(p)
}

type ShippingDetails struct {
	FullName string `json:"full_name" validate:"required" example:"John Doe"`
	Email    string `json:"email" validate:"required,email" example:"johndoe@example.com"`
	Phone    string `json:"phone" validate:"required" example:"(212) 555-1122"`
	Address  string `json:"address" example:"123 5th Avenue, New York, NY 10001"`
	Notes    string `json:"notes" example:"Please call on arrival"`
}

type CardDetails struct {
	Name   string `json:"name" validate:"required" example:"John Doe"`
	Number string `json:"number" validate:"required,cardnumber" example:"4242 4242 4242 4242"`
	Expiry string `json:"expiry" validate:"required,cardexpiry" example:"12/28"`
	CVV    string `json:"cvv" validate:"required,cvv" example:"123"`
}

type PaymentDetails struct {
	Method PaymentMethod `json:"method" example:"credit_card"`
	Card   *CardDetails  `json:"card,omitempty"`
}

// CheckoutState is what the wizard exposes to the client. Card data
// never leaves the server beyond the last four digits.
type CheckoutState struct {
	Step         CheckoutStep    `json:"step"`
	Shipping     ShippingDetails `json:"shipping"`
	Method       PaymentMethod   `json:"payment_method"`
	CardLast4    string          `json:"card_last4,omitempty"`
	Cart         CartResponse    `json:"cart"`
	LocationName string          `json:"location_name,omitempty"`
}

type PlaceOrderResponse struct {
	Order   Order  `json:"order"`
	Message string `json:"message"`
}

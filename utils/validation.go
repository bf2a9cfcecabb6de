package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/houranii/tyreshop/models"
)

// Validate is the shared validator for fixtures and checkout forms.
// Gin's binding engine gets the same rules through RegisterRules.
var Validate *validator.Validate

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

func init() {
	Validate = validator.New()
	Validate.RegisterTagNameFunc(jsonFieldName)
	if err := RegisterRules(Validate); err != nil {
		panic(err)
	}
}

// RegisterRules adds the shop's custom tags to v.
func RegisterRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"cardnumber":  validateCardNumber,
		"cardexpiry":  validateCardExpiry,
		"cvv":         validateCVV,
		"vehicletype": validateVehicleType,
		"servicetype": validateServiceType,
		"notblank":    validateNotBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// NormalizeCardNumber drops the spaces people type between digit groups.
func NormalizeCardNumber(number string) string {
	return strings.ReplaceAll(number, " ", "")
}

func validateCardNumber(fl validator.FieldLevel) bool {
	return cardNumberPattern.MatchString(NormalizeCardNumber(fl.Field().String()))
}

func validateCardExpiry(fl validator.FieldLevel) bool {
	return cardExpiryPattern.MatchString(fl.Field().String())
}

func validateCVV(fl validator.FieldLevel) bool {
	return cvvPattern.MatchString(fl.Field().String())
}

func validateVehicleType(fl validator.FieldLevel) bool {
	return models.VehicleType(fl.Field().String()).Valid()
}

func validateServiceType(fl validator.FieldLevel) bool {
	return models.ServiceType(fl.Field().String()).Valid()
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// FieldErrors flattens validator output into field -> message. Errors
// that did not come from the validator are reported under "_".
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range ve {
		out[fieldKey(fe)] = translate(fe)
	}
	return out
}

// fieldKey strips the root struct name from the namespace.
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func translate(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "cardnumber":
		return "Invalid card number"
	case "cardexpiry":
		return "Use format MM/YY"
	case "cvv":
		return "Invalid security code"
	case "vehicletype":
		return "Must be one of: Car SUV Truck"
	case "servicetype":
		return "Must be Professional Fitting or Self-Pickup"
	case "notblank":
		return "Must not be blank"
	default:
		return fmt.Sprintf("Failed validation: %s", fe.Tag())
	}
}

// RegisterBindingRules adds the custom tags to gin's binding validator.
func RegisterBindingRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	v.RegisterTagNameFunc(jsonFieldName)
	return RegisterRules(v)
}

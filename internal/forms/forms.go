package forms

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	mobilePattern  = regexp.MustCompile(`^\d{10}$`)
	aadhaarPattern = regexp.MustCompile(`^\d{12}$`)
	pinPattern     = regexp.MustCompile(`^\d{6}$`)
)

// FieldErrors maps a field key (dotted for nested sub-objects, e.g.
// "address.pinCode") to the message rendered next to that input.
type FieldErrors map[string]string

func (e FieldErrors) Any() bool {
	return len(e) > 0
}

// NewValidator builds the shared validator with the portal's format checks
// registered: 10-digit mobile, 12-digit aadhaar, 6-digit PIN. Field keys in
// the resulting errors follow the json tag names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("aadhaar", func(fl validator.FieldLevel) bool {
		return aadhaarPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pinPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate runs the struct checks and converts the result into field-keyed
// messages. Validation failures block submission entirely; the caller must
// not issue a network request when any error is present.
func Validate(v *validator.Validate, s interface{}) FieldErrors {
	errs := FieldErrors{}
	err := v.Struct(s)
	if err == nil {
		return errs
	}
	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_form"] = err.Error()
		return errs
	}
	for _, fe := range invalid {
		key := fieldKey(fe.Namespace())
		errs[key] = message(key, fe)
	}
	return errs
}

// fieldKey strips the root struct name from the namespace, leaving the
// dotted json path: "RegisterRequest.address.pinCode" -> "address.pinCode".
func fieldKey(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(key string, fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Please enter a valid email address"
	case "mobile":
		return label + " must be 10 digits"
	case "aadhaar":
		return "Aadhaar number must be 12 digits"
	case "pincode":
		return "PIN code must be 6 digits"
	case "min":
		if fe.Kind() == reflect.String {
			return label + " must be at least " + fe.Param() + " characters"
		}
		return label + " must be at least " + fe.Param()
	case "gte":
		return label + " must be at least " + fe.Param()
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return label + " must be one of: " + fe.Param()
	default:
		return label + " is invalid"
	}
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// humanize turns a json field name into a label: "mobileNo" -> "Mobile No".
func humanize(field string) string {
	spaced := camelBoundary.ReplaceAllString(field, "$1 $2")
	if spaced == "" {
		return spaced
	}
	return strings.ToUpper(spaced[:1]) + spaced[1:]
}

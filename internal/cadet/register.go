package cadet

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"NCCPortal/internal/forms"
)

// Registration is the cadet registration form controller. It holds the
// mutable draft; SetField updates exactly one field (or one nested address
// or bank-details field) per call. A failed submission leaves the draft
// intact so the user can correct and resubmit; the draft resets only on
// confirmed success.
type Registration struct {
	mu       sync.Mutex
	client   *Client
	validate *validator.Validate
	draft    RegisterForm
}

func NewRegistration(client *Client, validate *validator.Validate) *Registration {
	return &Registration{client: client, validate: validate, draft: NewRegisterForm()}
}

func (r *Registration) Draft() RegisterForm {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draft
}

// SetField routes a single change into the draft. Nested fields use dotted
// names ("address.city", "bankDetails.ifscCode"), matching the field keys
// validation errors are reported under.
func (r *Registration) SetField(name, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if field, ok := strings.CutPrefix(name, "address."); ok {
		return setAddressField(&r.draft.Address, field, value)
	}
	if field, ok := strings.CutPrefix(name, "bankDetails."); ok {
		return setBankField(&r.draft.BankDetails, field, value)
	}

	switch name {
	case "fullName":
		r.draft.FullName = value
	case "mailId":
		r.draft.MailID = value
	case "mobileNo":
		r.draft.MobileNo = value
	case "alternateMobileNo":
		r.draft.AlternateMobileNo = value
	case "regimentalNo":
		r.draft.RegimentalNo = value
	case "gender":
		r.draft.Gender = value
	case "dateOfBirth":
		r.draft.DateOfBirth = value
	case "adhaarNo":
		r.draft.AdhaarNo = value
	case "bloodGroup":
		r.draft.BloodGroup = value
	case "branch":
		r.draft.Branch = value
	case "btechYear":
		year, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("btechYear must be a number: %w", err)
		}
		r.draft.BtechYear = year
	case "nationality":
		r.draft.Nationality = value
	case "religion":
		r.draft.Religion = value
	case "password":
		r.draft.Password = value
	case "confirmPassword":
		r.draft.ConfirmPassword = value
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

func setAddressField(addr *Address, field, value string) error {
	switch field {
	case "houseNumber":
		addr.HouseNumber = value
	case "street":
		addr.Street = value
	case "city":
		addr.City = value
	case "district":
		addr.District = value
	case "state":
		addr.State = value
	case "pinCode":
		addr.PinCode = value
	default:
		return fmt.Errorf("unknown address field %q", field)
	}
	return nil
}

func setBankField(bank *BankDetails, field, value string) error {
	switch field {
	case "bankName":
		bank.BankName = value
	case "accountNo":
		bank.AccountNo = value
	case "ifscCode":
		bank.IFSCCode = value
	default:
		return fmt.Errorf("unknown bank details field %q", field)
	}
	return nil
}

// Submit validates the draft and, only if validation passes, posts the
// registration. Field errors block submission without any network call.
func (r *Registration) Submit(ctx context.Context) (forms.FieldErrors, error) {
	r.mu.Lock()
	draft := r.draft
	r.mu.Unlock()

	if errs := forms.Validate(r.validate, draft); errs.Any() {
		return errs, nil
	}

	if err := r.client.Register(ctx, draft); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.draft = NewRegisterForm()
	r.mu.Unlock()
	return nil, nil
}

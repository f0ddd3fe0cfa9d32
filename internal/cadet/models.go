package cadet

// Address is owned by its cadet; it has no independent lifecycle.
type Address struct {
	HouseNumber string `json:"houseNumber" validate:"required"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	District    string `json:"district" validate:"required"`
	State       string `json:"state" validate:"required"`
	PinCode     string `json:"pinCode" validate:"required,pincode"`
}

type BankDetails struct {
	BankName  string `json:"bankName" validate:"required"`
	AccountNo string `json:"accountNo" validate:"required"`
	IFSCCode  string `json:"ifscCode" validate:"required"`
}

// Cadet is the server-owned profile record; the portal holds short-lived
// read-mostly copies fetched per view.
type Cadet struct {
	ID                int64       `json:"id"`
	FullName          string      `json:"fullName"`
	MailID            string      `json:"mailId"`
	MobileNo          string      `json:"mobileNo"`
	AlternateMobileNo string      `json:"alternateMobileNo,omitempty"`
	RegimentalNo      string      `json:"regimentalNo"`
	Gender            string      `json:"gender"`
	DateOfBirth       string      `json:"dateOfBirth"`
	AdhaarNo          string      `json:"adhaarNo"`
	BloodGroup        string      `json:"bloodGroup"`
	Branch            string      `json:"branch"`
	BtechYear         int         `json:"btechYear"`
	Nationality       string      `json:"nationality"`
	Religion          string      `json:"religion"`
	Address           Address     `json:"address"`
	BankDetails       BankDetails `json:"bankDetails"`
}

// ANO is an admin account.
type ANO struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	EmailID  string `json:"emailId"`
	MobileNo string `json:"mobileNo"`
	Unit     string `json:"unit"`
	Rank     string `json:"rank"`
}

// RegisterForm mirrors the cadet registration screen's editable fields.
// ConfirmPassword is client-side only and never sent to the API.
type RegisterForm struct {
	FullName          string      `json:"fullName" validate:"required"`
	MailID            string      `json:"mailId" validate:"required,email"`
	MobileNo          string      `json:"mobileNo" validate:"required,mobile"`
	AlternateMobileNo string      `json:"alternateMobileNo,omitempty" validate:"omitempty,mobile"`
	RegimentalNo      string      `json:"regimentalNo" validate:"required"`
	Gender            string      `json:"gender" validate:"required"`
	DateOfBirth       string      `json:"dateOfBirth" validate:"required"`
	AdhaarNo          string      `json:"adhaarNo" validate:"required,aadhaar"`
	BloodGroup        string      `json:"bloodGroup" validate:"required"`
	Branch            string      `json:"branch" validate:"required"`
	BtechYear         int         `json:"btechYear" validate:"required"`
	Nationality       string      `json:"nationality" validate:"required"`
	Religion          string      `json:"religion" validate:"required"`
	Password          string      `json:"password" validate:"required,min=8"`
	ConfirmPassword   string      `json:"confirmPassword,omitempty" validate:"required,eqfield=Password"`
	Address           Address     `json:"address"`
	BankDetails       BankDetails `json:"bankDetails"`
}

// NewRegisterForm returns the blank draft. Nationality defaults the way the
// registration screen does.
func NewRegisterForm() RegisterForm {
	return RegisterForm{Nationality: "Indian"}
}

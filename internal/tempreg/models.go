package tempreg

// TemporaryRegistration is a pre-enrollment record. RegimentalNo stays empty
// until assignment turns the registrant into an addressable cadet identity.
// Wire names follow the remote API's contract as-is.
type TemporaryRegistration struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	EmailID        string `json:"emailId"`
	Gender         string `json:"gender"`
	Phone          string `json:"phone"`
	FatherName     string `json:"fatherName"`
	FatherNo       string `json:"fatherNo"`
	FatherIncome   string `json:"fatherIncome"`
	BankAccount    string `json:"banckAccount"`
	Address        string `json:"address"`
	AdhaarNo       string `json:"adhaarNo"`
	BloodGroup     string `json:"bloodGroup"`
	BtechYear      string `json:"btechYear"`
	Branch         string `json:"branch"`
	Height         string `json:"height"`
	Weight         string `json:"weight"`
	CollegeRollNo  string `json:"collegeRollNO"`
	IsACertificate bool   `json:"isACertificate"`
	RegimentalNo   string `json:"regimentalNo,omitempty"`
}

func (r TemporaryRegistration) Assigned() bool {
	return r.RegimentalNo != ""
}

// Form is the public temporary-registration draft.
type Form struct {
	Name           string `json:"name" validate:"required"`
	EmailID        string `json:"emailId" validate:"required,email"`
	Gender         string `json:"gender" validate:"required"`
	Phone          string `json:"phone" validate:"required,mobile"`
	FatherName     string `json:"fatherName" validate:"required"`
	FatherNo       string `json:"fatherNo" validate:"omitempty,mobile"`
	FatherIncome   string `json:"fatherIncome"`
	BankAccount    string `json:"banckAccount"`
	Address        string `json:"address" validate:"required"`
	AdhaarNo       string `json:"adhaarNo" validate:"required,aadhaar"`
	BloodGroup     string `json:"bloodGroup"`
	BtechYear      string `json:"btechYear" validate:"required"`
	Branch         string `json:"branch" validate:"required"`
	Height         string `json:"height"`
	Weight         string `json:"weight"`
	CollegeRollNo  string `json:"collegeRollNO" validate:"required"`
	IsACertificate bool   `json:"isACertificate"`
}

// AssignmentUpdate is one row of a bulk regimental-number assignment.
type AssignmentUpdate struct {
	ID           int64  `json:"id"`
	RegimentalNo string `json:"regimentalNo"`
}

// NotificationForm is the announcement sent to every temporary registrant.
type NotificationForm struct {
	Location     string `json:"location" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
	Instructions string `json:"instructions"`
}

package camp

import "NCCPortal/internal/cadet"

// Camp types offered by the portal.
var CampTypes = []string{"Training", "Adventure", "Leadership", "Special", "Other"}

type Camp struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	CampType     string `json:"campType"`
	NoOfDays     int    `json:"noOfDays"`
	NoOfSeats    int    `json:"noOfSeats"`
	Instructions string `json:"instructions"`
}

// Registration relates one cadet to one camp. Accepted=false covers both
// never-reviewed and explicitly rejected registrations; the UI tab is the
// only thing that tells them apart.
type Registration struct {
	ID       int64 `json:"id"`
	CampID   int64 `json:"campId"`
	CadetID  int64 `json:"cadetId"`
	Accepted bool  `json:"accepted"`
}

// CampForm is the add-camp draft.
type CampForm struct {
	Name         string `json:"name" validate:"required"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"endDate" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Description  string `json:"description"`
	CampType     string `json:"campType" validate:"required,oneof=Training Adventure Leadership Special Other"`
	NoOfDays     int    `json:"noOfDays" validate:"required,gte=1"`
	NoOfSeats    int    `json:"noOfSeats" validate:"required,gte=1"`
	Instructions string `json:"instructions"`
}

// PublicRegistrationForm is the unauthenticated camp signup used from the
// public camps page.
type PublicRegistrationForm struct {
	CampID       int64  `json:"campId" validate:"required"`
	RegimentalNo string `json:"regimentalNo" validate:"required"`
	Gender       string `json:"gender" validate:"required"`
	MobileNo     string `json:"mobileNo" validate:"required,mobile"`
	BtechYear    int    `json:"btechYear" validate:"required"`
	Branch       string `json:"branch" validate:"required"`
}

// Row is one rendered camp entry on the cadet camps screen; Registration is
// nil for camps the cadet has not signed up for.
type Row struct {
	Camp
	Registration *Registration `json:"registration,omitempty"`
}

// RosterRow is one rendered entry of the camp members screen.
type RosterRow struct {
	Registration Registration `json:"registration"`
	Cadet        cadet.Cadet  `json:"cadet"`
}

// Roster view modes.
const (
	ViewPending  = "pending"
	ViewAccepted = "accepted"
	ViewAll      = "all"
)

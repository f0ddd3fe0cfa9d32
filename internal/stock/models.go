package stock

import (
	"time"

	"NCCPortal/internal/cadet"
)

// Item types. Retentional items must come back; non-retentional items are
// consumed on issue.
const (
	TypeRetentional    = "retentional"
	TypeNonRetentional = "non-retentional"
)

// StockItem is one inventory line. ItemCode is server-assigned and distinct
// from the client-entered ItemName.
type StockItem struct {
	ID           int64   `json:"id"`
	ItemName     string  `json:"itemName"`
	ItemCode     string  `json:"itemCode"`
	Quantity     int     `json:"quantity"`
	Cost         float64 `json:"cost"`
	ReceivedDate string  `json:"receivedDate"`
	ItemType     string  `json:"itemType"`
}

// IssuedStock records an issuance of a stock item to a cadet. Overdue state
// is not transmitted for the "all" view; it is derived from ReturnDate
// against the portal clock.
type IssuedStock struct {
	ID         int64        `json:"id"`
	Stock      StockItem    `json:"stock"`
	Cadet      *cadet.Cadet `json:"cadet,omitempty"`
	Quantity   int          `json:"quantity"`
	IssuedAt   string       `json:"issuedAt"`
	ReturnDate string       `json:"returnDate"`
	Remarks    string       `json:"remarks,omitempty"`
}

// Overdue reports whether the return date has passed as of now. Entries with
// an unparseable or missing return date are not overdue.
func (i IssuedStock) Overdue(now time.Time) bool {
	returnDate, ok := parseDate(i.ReturnDate)
	if !ok {
		return false
	}
	return returnDate.Before(now)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NewStockForm is the add-stock draft.
type NewStockForm struct {
	ItemName     string  `json:"itemName" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gte=1"`
	Cost         float64 `json:"cost" validate:"required"`
	ReceivedDate string  `json:"receivedDate" validate:"required"`
	ItemType     string  `json:"itemType" validate:"required,oneof=retentional non-retentional"`
}

// IssueForm is the issue-stock draft. The endpoint takes these as query
// parameters rather than a JSON body.
type IssueForm struct {
	ItemCode     string `json:"itemCode" validate:"required"`
	RegimentalNo string `json:"regimentalNo" validate:"required"`
	IssuedAt     string `json:"issuedAt" validate:"required"`
	ReturnDate   string `json:"returnDate" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gte=1"`
	Remarks      string `json:"remarks"`
}

// Group collects the cadets holding one stock item past its return date.
type Group struct {
	Stock  StockItem     `json:"stock"`
	Cadets []cadet.Cadet `json:"cadets"`
}

// Cadet stock screen tabs.
const (
	TabAll        = "all"
	TabUnreturned = "unreturned"
	TabPending    = "pending"
)

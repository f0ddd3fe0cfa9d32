package tempreg

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"NCCPortal/internal/config"
	"NCCPortal/internal/forms"
	"NCCPortal/internal/view"
)

// Service backs the temporary-registration screens: the public signup form
// and the ANO dashboard with regimental-number assignment and notification.
type Service struct {
	client   *Client
	validate *validator.Validate
	Banner   *view.Banner

	registrations view.Collection[TemporaryRegistration]
}

func NewService(client *Client, validate *validator.Validate) *Service {
	return &Service{
		client:   client,
		validate: validate,
		Banner:   view.NewBanner(),
	}
}

// Load refreshes the registration collection from the remote API.
func (s *Service) Load(ctx context.Context) error {
	return s.registrations.Reload(ctx, s.client.List)
}

func (s *Service) Phase() view.Phase {
	return s.registrations.Snapshot().Phase
}

// Rows filters the loaded registrations by the search term. The regimental
// number only participates in matching once it has been assigned.
func (s *Service) Rows(searchTerm string) []TemporaryRegistration {
	return view.Search(s.registrations.Items(), searchTerm, func(r TemporaryRegistration) []string {
		fields := []string{r.Name, r.EmailID, r.CollegeRollNo}
		if r.Assigned() {
			fields = append(fields, r.RegimentalNo)
		}
		return fields
	})
}

// Submit validates the public signup and posts it only when the draft is
// clean; validation failures issue zero network requests.
func (s *Service) Submit(ctx context.Context, form Form) (forms.FieldErrors, error) {
	if errs := forms.Validate(s.validate, form); errs.Any() {
		return errs, nil
	}
	if err := s.client.Create(ctx, form); err != nil {
		s.Banner.Error(config.Message(err, "Registration failed. Please try again."))
		return nil, err
	}
	s.Banner.Success("Registration submitted successfully!")
	return nil, nil
}

// Assign gives one registrant a regimental number and merges the assignment
// into the loaded rows for immediate feedback. The next Load is authoritative.
func (s *Service) Assign(ctx context.Context, id int64, regimentalNo string) error {
	if regimentalNo == "" {
		s.Banner.Error("Regimental number cannot be empty.")
		return fmt.Errorf("tempreg: empty regimental number")
	}
	if err := s.client.Assign(ctx, id, regimentalNo); err != nil {
		s.Banner.Error(config.Message(err, "Failed to assign regimental number. Please try again."))
		return err
	}
	s.registrations.Patch(func(regs []TemporaryRegistration) []TemporaryRegistration {
		for i := range regs {
			if regs[i].ID == id {
				regs[i].RegimentalNo = regimentalNo
			}
		}
		return regs
	})
	s.Banner.Success("Regimental number assigned successfully!")
	return nil
}

// BulkAssign numbers every unassigned registrant in encounter order with
// prefix+1 through prefix+N, leaving already assigned rows untouched. It
// returns how many registrants received a number.
func (s *Service) BulkAssign(ctx context.Context, prefix string) (int, error) {
	if prefix == "" {
		s.Banner.Error("Prefix cannot be empty.")
		return 0, fmt.Errorf("tempreg: empty prefix")
	}

	var updates []AssignmentUpdate
	next := 1
	for _, reg := range s.registrations.Items() {
		if reg.Assigned() {
			continue
		}
		updates = append(updates, AssignmentUpdate{
			ID:           reg.ID,
			RegimentalNo: fmt.Sprintf("%s%d", prefix, next),
		})
		next++
	}
	if len(updates) == 0 {
		s.Banner.Success("All registrants already have regimental numbers.")
		return 0, nil
	}

	if err := s.client.BulkAssign(ctx, updates); err != nil {
		s.Banner.Error(config.Message(err, "Bulk assignment failed. Please try again."))
		return 0, err
	}

	assigned := make(map[int64]string, len(updates))
	for _, u := range updates {
		assigned[u.ID] = u.RegimentalNo
	}
	s.registrations.Patch(func(regs []TemporaryRegistration) []TemporaryRegistration {
		for i := range regs {
			if no, ok := assigned[regs[i].ID]; ok {
				regs[i].RegimentalNo = no
			}
		}
		return regs
	})
	s.Banner.Success(fmt.Sprintf("Assigned regimental numbers to %d registrants!", len(updates)))
	return len(updates), nil
}

// Notify validates the announcement and relays it, returning the server's
// plain-text status line.
func (s *Service) Notify(ctx context.Context, form NotificationForm) (string, forms.FieldErrors, error) {
	if errs := forms.Validate(s.validate, form); errs.Any() {
		return "", errs, nil
	}
	msg, err := s.client.Notify(ctx, form)
	if err != nil {
		s.Banner.Error(config.Message(err, "Failed to send notifications. Please try again."))
		return "", nil, err
	}
	s.Banner.Success(msg)
	return msg, nil, nil
}

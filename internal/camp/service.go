package camp

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"NCCPortal/internal/cadet"
	"NCCPortal/internal/config"
	"NCCPortal/internal/forms"
	"NCCPortal/internal/view"
)

// Service backs the camps screens: the public/cadet camps list, camp
// creation, and the per-camp roster with its accept/reject actions.
type Service struct {
	client   *Client
	cadets   *cadet.Client
	validate *validator.Validate
	Banner   *view.Banner

	camps view.Collection[Row]

	mu          sync.Mutex
	rosterCamp  *Camp
	roster      view.Collection[Registration]
	cadetLookup map[int64]cadet.Cadet
}

func NewService(client *Client, cadets *cadet.Client, validate *validator.Validate) *Service {
	return &Service{
		client:   client,
		cadets:   cadets,
		validate: validate,
		Banner:   view.NewBanner(),
	}
}

// LoadUpcoming refreshes the upcoming-camps collection.
func (s *Service) LoadUpcoming(ctx context.Context) error {
	return s.camps.Reload(ctx, func(ctx context.Context) ([]Row, error) {
		camps, err := s.client.Upcoming(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, len(camps))
		for i, c := range camps {
			rows[i] = Row{Camp: c}
		}
		return rows, nil
	})
}

// LoadMyCamps refreshes the collection with the cadet's own registrations:
// fetch registrations, then the camp record behind each one, merging the
// registration into the row.
func (s *Service) LoadMyCamps(ctx context.Context, cadetID int64) error {
	return s.camps.Reload(ctx, func(ctx context.Context) ([]Row, error) {
		regs, err := s.client.RegistrationsByCadet(ctx, cadetID)
		if err != nil {
			return nil, err
		}
		campIDs := view.UniqueKeys(regs, func(r Registration) int64 { return r.CampID })
		lookup := view.FanOut(ctx, campIDs, func(ctx context.Context, id int64) (*Camp, error) {
			return s.client.Get(ctx, id)
		})
		rows := make([]Row, 0, len(regs))
		for _, reg := range regs {
			camp, ok := lookup[reg.CampID]
			if !ok {
				continue
			}
			rows = append(rows, Row{Camp: *camp, Registration: &reg})
		}
		return rows, nil
	})
}

func (s *Service) CampRows() []Row {
	return s.camps.Items()
}

func (s *Service) CampsPhase() view.Phase {
	return s.camps.Snapshot().Phase
}

// Register signs the cadet up and merges the new registration into the
// loaded rows for immediate feedback. The next full reload is authoritative
// and overwrites this patch.
func (s *Service) Register(ctx context.Context, campID, cadetID int64) (*Registration, error) {
	reg, err := s.client.Register(ctx, campID, cadetID)
	if err != nil {
		s.Banner.Error(config.Message(err, "Failed to register for the camp. Please try again."))
		return nil, err
	}
	s.camps.Patch(func(rows []Row) []Row {
		for i := range rows {
			if rows[i].ID == campID {
				rows[i].Registration = reg
			}
		}
		return rows
	})
	s.Banner.Success("Successfully registered for the camp!")
	return reg, nil
}

// RegisterPublic validates the public signup and posts it only when the
// draft is clean; validation failures issue zero network requests.
func (s *Service) RegisterPublic(ctx context.Context, form PublicRegistrationForm) (forms.FieldErrors, error) {
	if errs := forms.Validate(s.validate, form); errs.Any() {
		return errs, nil
	}
	if err := s.client.RegisterPublic(ctx, form); err != nil {
		s.Banner.Error(config.Message(err, "Registration failed. Please try again."))
		return nil, err
	}
	s.Banner.Success("Successfully registered for the camp!")
	return nil, nil
}

// CreateCamp validates and posts a new camp, then re-fetches the upcoming
// list so the view reflects the server's copy.
func (s *Service) CreateCamp(ctx context.Context, form CampForm) (forms.FieldErrors, error) {
	if errs := forms.Validate(s.validate, form); errs.Any() {
		return errs, nil
	}
	if err := s.client.Create(ctx, form); err != nil {
		s.Banner.Error(config.Message(err, "Failed to add camp. Please try again."))
		return nil, err
	}
	s.Banner.Success("Camp added successfully!")
	if err := s.LoadUpcoming(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

// LoadRoster fetches the camp, its registrations, and the cadet details
// behind every unique cadet id referenced by them.
func (s *Service) LoadRoster(ctx context.Context, campID int64) error {
	camp, err := s.client.Get(ctx, campID)
	if err != nil {
		return err
	}

	err = s.roster.Reload(ctx, func(ctx context.Context) ([]Registration, error) {
		return s.client.RegistrationsByCamp(ctx, campID)
	})
	if err != nil {
		return err
	}

	regs := s.roster.Items()
	cadetIDs := view.UniqueKeys(regs, func(r Registration) int64 { return r.CadetID })
	lookup := view.FanOut(ctx, cadetIDs, func(ctx context.Context, id int64) (cadet.Cadet, error) {
		details, err := s.cadets.Get(ctx, id)
		if err != nil {
			return cadet.Cadet{}, err
		}
		return *details, nil
	})

	s.mu.Lock()
	s.rosterCamp = camp
	s.cadetLookup = lookup
	s.mu.Unlock()
	return nil
}

// RosterCampName is the heading of the roster screen.
func (s *Service) RosterCampName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rosterCamp == nil {
		return ""
	}
	return s.rosterCamp.Name
}

// TabCounts returns the pending/accepted/all badge numbers for the loaded
// roster.
func (s *Service) TabCounts() (pending, accepted, all int) {
	regs := s.roster.Items()
	for _, reg := range regs {
		if reg.Accepted {
			accepted++
		} else {
			pending++
		}
	}
	return pending, accepted, len(regs)
}

// RosterRows derives the rendered rows for a view mode and search term.
// Rows whose cadet lookup entry is missing are skipped rather than failing
// the render.
func (s *Service) RosterRows(viewMode, searchTerm string) []RosterRow {
	s.mu.Lock()
	lookup := s.cadetLookup
	s.mu.Unlock()

	rows := make([]RosterRow, 0)
	for _, reg := range s.roster.Items() {
		switch viewMode {
		case ViewPending:
			if reg.Accepted {
				continue
			}
		case ViewAccepted:
			if !reg.Accepted {
				continue
			}
		case ViewAll:
		default:
			continue
		}

		details, ok := lookup[reg.CadetID]
		if !ok {
			continue
		}
		if !view.MatchesTerm(searchTerm, details.FullName, details.RegimentalNo, details.MailID) {
			continue
		}
		rows = append(rows, RosterRow{Registration: reg, Cadet: details})
	}
	return rows
}

// SetRegistrationStatus accepts or rejects a registration and re-fetches the
// roster on success.
func (s *Service) SetRegistrationStatus(ctx context.Context, registrationID int64, accepted bool) error {
	action := "reject"
	if accepted {
		action = "accept"
	}

	if err := s.client.SetAccepted(ctx, registrationID, accepted); err != nil {
		s.Banner.Error(config.Message(err, "Failed to "+action+" cadet. Please try again."))
		return err
	}
	if accepted {
		s.Banner.Success("Cadet registration accepted successfully!")
	} else {
		s.Banner.Success("Cadet registration rejected successfully!")
	}

	s.mu.Lock()
	current := s.rosterCamp
	s.mu.Unlock()
	if current != nil {
		return s.LoadRoster(ctx, current.ID)
	}
	return nil
}

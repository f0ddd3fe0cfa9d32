package cadet

import (
	"context"
	"errors"
	"strconv"

	"NCCPortal/internal/session"
	"NCCPortal/internal/view"
)

// AuthService translates login/logout actions into remote calls and session
// mutations. The session is seeded only after a successful authentication
// response.
type AuthService struct {
	client   *Client
	sessions *session.Store
}

func NewAuthService(client *Client, sessions *session.Store) *AuthService {
	return &AuthService{client: client, sessions: sessions}
}

func (s *AuthService) Login(ctx context.Context, role, email, password string) (session.Session, error) {
	var userID int64
	var err error
	switch role {
	case session.RoleCadet:
		userID, err = s.client.Login(ctx, email, password)
	case session.RoleANO:
		userID, err = s.client.LoginANO(ctx, email, password)
	default:
		return session.Session{}, errors.New("unknown role: " + role)
	}
	if err != nil {
		return session.Session{}, err
	}
	s.sessions.Login(strconv.FormatInt(userID, 10), role)
	return s.sessions.Read(), nil
}

func (s *AuthService) Logout() {
	s.sessions.Logout()
}

// Profile is the role-switched profile view model.
type Profile struct {
	Role  string `json:"role"`
	Cadet *Cadet `json:"cadet,omitempty"`
	ANO   *ANO   `json:"ano,omitempty"`
}

// Service backs the profile screen and the ANO-facing cadets list.
type Service struct {
	client   *Client
	sessions *session.Store
	cadets   view.Collection[Cadet]
	Banner   *view.Banner
}

func NewService(client *Client, sessions *session.Store) *Service {
	return &Service{client: client, sessions: sessions, Banner: view.NewBanner()}
}

var ErrNotLoggedIn = errors.New("not logged in")

func (s *Service) sessionUserID() (int64, string, error) {
	sess := s.sessions.Read()
	if !sess.LoggedIn() {
		return 0, "", ErrNotLoggedIn
	}
	id, err := strconv.ParseInt(sess.UserID, 10, 64)
	if err != nil {
		return 0, "", err
	}
	return id, sess.Role, nil
}

// Profile fetches the logged-in identity's profile from the role-specific
// endpoint.
func (s *Service) Profile(ctx context.Context) (*Profile, error) {
	id, role, err := s.sessionUserID()
	if err != nil {
		return nil, err
	}
	switch role {
	case session.RoleCadet:
		cadet, err := s.client.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return &Profile{Role: role, Cadet: cadet}, nil
	default:
		account, err := s.client.GetANO(ctx, id)
		if err != nil {
			return nil, err
		}
		return &Profile{Role: role, ANO: account}, nil
	}
}

// UpdateProfile saves edits through the role-specific endpoint and returns
// the server's copy, which replaces the local draft.
func (s *Service) UpdateProfile(ctx context.Context, edited Profile) (*Profile, error) {
	id, role, err := s.sessionUserID()
	if err != nil {
		return nil, err
	}
	switch role {
	case session.RoleCadet:
		if edited.Cadet == nil {
			return nil, errors.New("missing cadet profile data")
		}
		updated, err := s.client.Update(ctx, id, *edited.Cadet)
		if err != nil {
			return nil, err
		}
		return &Profile{Role: role, Cadet: updated}, nil
	default:
		if edited.ANO == nil {
			return nil, errors.New("missing account data")
		}
		updated, err := s.client.UpdateANO(ctx, id, *edited.ANO)
		if err != nil {
			return nil, err
		}
		return &Profile{Role: role, ANO: updated}, nil
	}
}

// LoadCadets refreshes the cadets list.
func (s *Service) LoadCadets(ctx context.Context) error {
	return s.cadets.Reload(ctx, s.client.List)
}

// CadetRows derives the rendered list for a search term: case-insensitive
// substring match on full name and regimental number.
func (s *Service) CadetRows(searchTerm string) []Cadet {
	return view.Search(s.cadets.Items(), searchTerm, func(c Cadet) []string {
		return []string{c.FullName, c.RegimentalNo}
	})
}

func (s *Service) CadetsPhase() view.Phase {
	return s.cadets.Snapshot().Phase
}

package camp

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"NCCPortal/internal/config"
)

// Client calls the camp and camp-registration resources of the remote API.
type Client struct {
	api *config.APIClient
}

func NewClient(api *config.APIClient) *Client {
	return &Client{api: api}
}

func (c *Client) Upcoming(ctx context.Context) ([]Camp, error) {
	var camps []Camp
	if err := c.api.GetJSON(ctx, "/camps/upcoming", nil, &camps); err != nil {
		return nil, err
	}
	return camps, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*Camp, error) {
	var camp Camp
	if err := c.api.GetJSON(ctx, fmt.Sprintf("/camps/%d", id), nil, &camp); err != nil {
		return nil, err
	}
	return &camp, nil
}

func (c *Client) Create(ctx context.Context, form CampForm) error {
	return c.api.PostJSON(ctx, "/camps", form, nil)
}

func (c *Client) RegistrationsByCamp(ctx context.Context, campID int64) ([]Registration, error) {
	var regs []Registration
	path := fmt.Sprintf("/camp-registrations/camp/%d/cadets", campID)
	if err := c.api.GetJSON(ctx, path, nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func (c *Client) RegistrationsByCadet(ctx context.Context, cadetID int64) ([]Registration, error) {
	var regs []Registration
	path := fmt.Sprintf("/camp-registrations/cadet/%d", cadetID)
	if err := c.api.GetJSON(ctx, path, nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

type registerRequest struct {
	CampID  int64 `json:"campId"`
	CadetID int64 `json:"cadetId"`
}

// Register signs a logged-in cadet up for a camp and returns the created
// registration.
func (c *Client) Register(ctx context.Context, campID, cadetID int64) (*Registration, error) {
	var reg Registration
	err := c.api.PostJSON(ctx, "/camp-registrations", registerRequest{CampID: campID, CadetID: cadetID}, &reg)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// RegisterPublic is the unauthenticated signup path, distinct from the
// authenticated one.
func (c *Client) RegisterPublic(ctx context.Context, form PublicRegistrationForm) error {
	return c.api.PostJSON(ctx, "/camp-registrations/public", form, nil)
}

// SetAccepted accepts or rejects a registration. The flag travels as a query
// parameter, not a body.
func (c *Client) SetAccepted(ctx context.Context, registrationID int64, accepted bool) error {
	params := url.Values{"isAccepted": {strconv.FormatBool(accepted)}}
	path := fmt.Sprintf("/camp-registrations/%d/accept", registrationID)
	return c.api.PutParams(ctx, path, params, nil)
}

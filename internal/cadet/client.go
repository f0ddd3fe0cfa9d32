package cadet

import (
	"context"
	"fmt"

	"NCCPortal/internal/config"
)

// Client calls the cadet and ANO account resources of the remote API.
type Client struct {
	api *config.APIClient
}

func NewClient(api *config.APIClient) *Client {
	return &Client{api: api}
}

func (c *Client) List(ctx context.Context) ([]Cadet, error) {
	var cadets []Cadet
	if err := c.api.GetJSON(ctx, "/api/cadets", nil, &cadets); err != nil {
		return nil, err
	}
	return cadets, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*Cadet, error) {
	var cadet Cadet
	if err := c.api.GetJSON(ctx, fmt.Sprintf("/api/cadets/%d", id), nil, &cadet); err != nil {
		return nil, err
	}
	return &cadet, nil
}

func (c *Client) Update(ctx context.Context, id int64, profile Cadet) (*Cadet, error) {
	var updated Cadet
	if err := c.api.PutJSON(ctx, fmt.Sprintf("/api/cadets/%d", id), profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) Register(ctx context.Context, form RegisterForm) error {
	payload := form
	payload.ConfirmPassword = "" // never part of the API contract
	return c.api.PostJSON(ctx, "/api/cadets/register", payload, nil)
}

type cadetLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type cadetLoginResponse struct {
	CadetID int64 `json:"cadetId"`
}

// Login authenticates a cadet and returns the id used to seed the session.
func (c *Client) Login(ctx context.Context, email, password string) (int64, error) {
	var resp cadetLoginResponse
	err := c.api.PostJSON(ctx, "/api/cadets/login", cadetLoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.CadetID, nil
}

func (c *Client) GetANO(ctx context.Context, id int64) (*ANO, error) {
	var account ANO
	if err := c.api.GetJSON(ctx, fmt.Sprintf("/ano/%d", id), nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) UpdateANO(ctx context.Context, id int64, account ANO) (*ANO, error) {
	var updated ANO
	if err := c.api.PutJSON(ctx, fmt.Sprintf("/ano/%d", id), account, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

type anoLoginRequest struct {
	EmailID  string `json:"emailId"`
	Password string `json:"password"`
}

type anoLoginResponse struct {
	ID int64 `json:"id"`
}

func (c *Client) LoginANO(ctx context.Context, email, password string) (int64, error) {
	var resp anoLoginResponse
	err := c.api.PostJSON(ctx, "/ano/login", anoLoginRequest{EmailID: email, Password: password}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

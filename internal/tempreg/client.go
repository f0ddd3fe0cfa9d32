package tempreg

import (
	"context"
	"fmt"
	"net/url"

	"NCCPortal/internal/config"
)

// Client calls the temporary-registration resources of the remote API.
type Client struct {
	api *config.APIClient
}

func NewClient(api *config.APIClient) *Client {
	return &Client{api: api}
}

func (c *Client) Create(ctx context.Context, form Form) error {
	return c.api.PostJSON(ctx, "/api/temporary-registrations", form, nil)
}

func (c *Client) List(ctx context.Context) ([]TemporaryRegistration, error) {
	var regs []TemporaryRegistration
	if err := c.api.GetJSON(ctx, "/api/temporary-registrations", nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// Assign gives one registrant a regimental number. The number travels as a
// query parameter, not a body.
func (c *Client) Assign(ctx context.Context, id int64, regimentalNo string) error {
	params := url.Values{"regimentalNo": {regimentalNo}}
	path := fmt.Sprintf("/api/temporary-registrations/%d/assign-regimental", id)
	return c.api.PutParams(ctx, path, params, nil)
}

func (c *Client) BulkAssign(ctx context.Context, updates []AssignmentUpdate) error {
	return c.api.PostJSON(ctx, "/api/temporary-registrations/bulk-assign", updates, nil)
}

// Notify announces enrollment details to every temporary registrant. The
// endpoint replies with a plain-text status line rather than JSON.
func (c *Client) Notify(ctx context.Context, form NotificationForm) (string, error) {
	return c.api.PostText(ctx, "/notifications/notify-temporary-registrations", form)
}

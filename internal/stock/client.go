package stock

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"NCCPortal/internal/config"
)

// Client calls the stock and issued-stock resources of the remote API.
type Client struct {
	api *config.APIClient
}

func NewClient(api *config.APIClient) *Client {
	return &Client{api: api}
}

func (c *Client) All(ctx context.Context) ([]StockItem, error) {
	var items []StockItem
	if err := c.api.GetJSON(ctx, "/api/stock/all", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Available lists items with stock on hand, for the issue form's picker.
func (c *Client) Available(ctx context.Context) ([]StockItem, error) {
	var items []StockItem
	if err := c.api.GetJSON(ctx, "/api/stock/available", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Create(ctx context.Context, form NewStockForm) error {
	return c.api.PostJSON(ctx, "/api/stocks", form, nil)
}

// Issue posts the issuance as form-encoded query parameters, which is how
// the endpoint takes its input.
func (c *Client) Issue(ctx context.Context, form IssueForm) error {
	params := url.Values{}
	params.Set("itemCode", form.ItemCode)
	params.Set("regimentalNo", form.RegimentalNo)
	params.Set("issuedAt", form.IssuedAt)
	params.Set("returnDate", form.ReturnDate)
	params.Set("quantity", strconv.Itoa(form.Quantity))
	params.Set("remarks", form.Remarks)
	return c.api.PostParams(ctx, "/api/issued-stocks/issue-stock", params, nil)
}

func (c *Client) IssuedByCadet(ctx context.Context, cadetID int64) ([]IssuedStock, error) {
	var issued []IssuedStock
	path := fmt.Sprintf("/api/issued-stocks/%d", cadetID)
	if err := c.api.GetJSON(ctx, path, nil, &issued); err != nil {
		return nil, err
	}
	return issued, nil
}

func (c *Client) UnreturnedByCadet(ctx context.Context, cadetID int64) ([]IssuedStock, error) {
	var issued []IssuedStock
	path := fmt.Sprintf("/api/issued-stocks/cadet/%d/unreturned", cadetID)
	if err := c.api.GetJSON(ctx, path, nil, &issued); err != nil {
		return nil, err
	}
	return issued, nil
}

func (c *Client) PendingByCadet(ctx context.Context, cadetID int64) ([]IssuedStock, error) {
	var issued []IssuedStock
	path := fmt.Sprintf("/api/issued-stocks/cadet/%d/pending", cadetID)
	if err := c.api.GetJSON(ctx, path, nil, &issued); err != nil {
		return nil, err
	}
	return issued, nil
}

func (c *Client) ByStock(ctx context.Context, stockID int64) ([]IssuedStock, error) {
	var issued []IssuedStock
	path := fmt.Sprintf("/api/issued-stocks/stock/%d/cadets", stockID)
	if err := c.api.GetJSON(ctx, path, nil, &issued); err != nil {
		return nil, err
	}
	return issued, nil
}

// PendingCadets lists entries past their return date across all cadets. The
// endpoint answers 204 when there are none, which decodes as an empty list,
// not an error.
func (c *Client) PendingCadets(ctx context.Context) ([]IssuedStock, error) {
	var entries []IssuedStock
	if err := c.api.GetJSON(ctx, "/api/issued-stocks/pending-cadets", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Package nutrition integrates the external Spoonacular nutrition provider:
// a thin HTTP client plus the cache gate deciding when stored nutrition data
// is served and when it is refreshed.
package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Karthikeyagundu12/Nutrikart/apperr"
)

const defaultBaseURL = "https://api.spoonacular.com"

// Nutrient is one entry in the provider's heterogeneous nutrient list
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// MenuItemRef is a search hit
type MenuItemRef struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Image           string `json:"image"`
	RestaurantChain string `json:"restaurantChain"`
}

// SearchResult is the provider's search-by-name response
type SearchResult struct {
	MenuItems      []MenuItemRef `json:"menuItems"`
	TotalMenuItems int           `json:"totalMenuItems"`
}

// MenuItemDetail is the provider's nutrition-by-id response
type MenuItemDetail struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Nutrition struct {
		Nutrients []Nutrient `json:"nutrients"`
	} `json:"nutrition"`
}

// Provider is the external nutrition lookup surface the cache gate depends on
type Provider interface {
	SearchMenuItems(ctx context.Context, query string, number int) (*SearchResult, error)
	GetMenuItem(ctx context.Context, id int64) (*MenuItemDetail, error)
}

// Client calls the Spoonacular menu-items API
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// SearchMenuItems searches food items by name
func (c *Client) SearchMenuItems(ctx context.Context, query string, number int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", strconv.Itoa(number))

	var result SearchResult
	if err := c.get(ctx, "/food/menuItems/search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMenuItem fetches nutrition information for a provider menu-item id
func (c *Client) GetMenuItem(ctx context.Context, id int64) (*MenuItemDetail, error) {
	var detail MenuItemDetail
	path := fmt.Sprintf("/food/menuItems/%d", id)
	if err := c.get(ctx, path, url.Values{}, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return apperr.Wrap(apperr.RemoteLookup, "Failed to build nutrition provider request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Wrap(apperr.RemoteLookup, "Nutrition provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperr.Newf(apperr.RemoteLookup, "Nutrition provider returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.RemoteLookup, "Malformed nutrition provider response", err)
	}
	return nil
}

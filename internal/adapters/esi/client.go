// Package esi implements the EVE ESI market API client: paginated,
// rate-limited order-book retrieval and item metadata lookups.
package esi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/everoutes/eve-routes-go/internal/domain/catalog"
	"github.com/everoutes/eve-routes-go/internal/domain/market"
)

const (
	defaultBaseURL            = "https://esi.evetech.net/latest"
	defaultUserAgent          = "EVE-Routes/1.0 (https://github.com/everoutes/eve-routes-go)"
	defaultTimeout            = 30 * time.Second
	defaultMinRequestInterval = 100 * time.Millisecond
	defaultMaxPages           = 50
)

// Client is a throttled ESI API client. Every outbound request waits on a
// token bucket sized to one request per MinRequestInterval, so bursts of
// page fetches are spaced to the upstream's liking.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	maxPages   int
	logger     *zap.Logger
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL            string
	UserAgent          string
	Timeout            time.Duration
	MinRequestInterval time.Duration
	MaxPages           int
}

// NewClient creates an ESI client with the given options.
func NewClient(opts Options, logger *zap.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MinRequestInterval == 0 {
		opts.MinRequestInterval = defaultMinRequestInterval
	}
	if opts.MaxPages == 0 {
		opts.MaxPages = defaultMaxPages
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter:   rate.NewLimiter(rate.Every(opts.MinRequestInterval), 1),
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
		maxPages:  opts.MaxPages,
		logger:    logger,
	}
}

// RegionOrders fetches the full order book for a region and side, one page
// at a time starting at page 1. Pagination stops at the first empty page,
// a 404 (no more pages), any other failure, or the page ceiling.
//
// Failures mid-pagination are logged and the pages accumulated so far are
// returned without an error: partial books degrade the analysis to fewer
// candidates rather than aborting it. Only context cancellation surfaces
// as an error.
func (c *Client) RegionOrders(ctx context.Context, regionID int64, side market.OrderSide) ([]market.Order, error) {
	var allOrders []market.Order

	c.logger.Info("fetching region orders",
		zap.Int64("region_id", regionID),
		zap.String("side", string(side)))

	for page := 1; page <= c.maxPages; page++ {
		path := fmt.Sprintf("/markets/%d/orders/?order_type=%s&page=%d", regionID, side, page)

		var orders []market.Order
		status, err := c.get(ctx, path, &orders)
		if err != nil {
			if ctx.Err() != nil {
				return allOrders, fmt.Errorf("order fetch cancelled: %w", ctx.Err())
			}
			c.logger.Warn("order page fetch failed, keeping partial book",
				zap.Int64("region_id", regionID),
				zap.Int("page", page),
				zap.Error(err))
			break
		}

		if status == http.StatusNotFound {
			// Past the last page.
			break
		}
		if status != http.StatusOK {
			c.logger.Warn("unexpected status fetching orders, keeping partial book",
				zap.Int64("region_id", regionID),
				zap.Int("page", page),
				zap.Int("status", status))
			break
		}
		if len(orders) == 0 {
			break
		}

		allOrders = append(allOrders, orders...)

		if page%10 == 0 {
			c.logger.Info("order fetch progress",
				zap.Int("pages", page),
				zap.Int("orders", len(allOrders)))
		}
	}

	c.logger.Info("finished fetching orders",
		zap.Int64("region_id", regionID),
		zap.String("side", string(side)),
		zap.Int("orders", len(allOrders)))

	return allOrders, nil
}

// TypeInfo fetches catalog metadata for a single item type.
func (c *Client) TypeInfo(ctx context.Context, typeID int64) (*catalog.TypeInfo, error) {
	path := fmt.Sprintf("/universe/types/%d/", typeID)

	var payload struct {
		Name   string  `json:"name"`
		Volume float64 `json:"volume"`
	}

	status, err := c.get(ctx, path, &payload)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch type %d: %w", typeID, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching type %d", status, typeID)
	}

	return &catalog.TypeInfo{
		TypeID: typeID,
		Name:   payload.Name,
		Volume: payload.Volume,
	}, nil
}

// get performs one throttled GET and decodes a 2xx body into result. The
// status code is returned for all well-formed responses so callers can
// treat 404 as a pagination signal rather than a failure.
func (c *Client) get(ctx context.Context, path string, result interface{}) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, nil
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

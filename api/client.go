// api/client.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gregjones/httpcache"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/sellora/backoffice/config"
	"github.com/sellora/backoffice/models"
)

// Client talks to the marketplace back-office REST API. GET responses are
// cached by an httpcache transport honoring the server's cache headers;
// outgoing calls are paced by a token-bucket limiter. Failed calls are
// never retried here.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	limiter *rate.Limiter
	log     *logrus.Entry
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		token:   cfg.API.Token,
		httpc: &http.Client{
			Timeout:   time.Duration(cfg.API.RequestTimeout) * time.Second,
			Transport: httpcache.NewMemoryCacheTransport(),
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.API.RateLimit), cfg.API.RateBurst),
		log:     logrus.WithField("component", "api_client"),
	}
}

// FetchCategories returns the flat category listing scoped by item type.
func (c *Client) FetchCategories(ctx context.Context, itemType models.ItemType) ([]models.Category, error) {
	endpoint := fmt.Sprintf("%s/categories?type=%s", c.baseURL, url.QueryEscape(string(itemType)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build categories request")
	}

	var categories []models.Category
	if err := c.do(req, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// CreateItem posts a new item as multipart form data.
func (c *Client) CreateItem(ctx context.Context, payload *ItemPayload) (*models.Item, error) {
	return c.sendItem(ctx, http.MethodPost, c.baseURL+"/items", payload)
}

// UpdateItem replaces the persisted item identified by id.
func (c *Client) UpdateItem(ctx context.Context, id uuid.UUID, payload *ItemPayload) (*models.Item, error) {
	return c.sendItem(ctx, http.MethodPut, fmt.Sprintf("%s/items/%s", c.baseURL, id), payload)
}

// DeleteItemImage removes a single stored image from an item. This takes
// effect on the server immediately, independent of any later submit.
func (c *Client) DeleteItemImage(ctx context.Context, itemID, imageID uuid.UUID) error {
	endpoint := fmt.Sprintf("%s/items/%s/images/%s", c.baseURL, itemID, imageID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build delete image request")
	}

	return c.do(req, nil)
}

func (c *Client) sendItem(ctx context.Context, method, endpoint string, payload *ItemPayload) (*models.Item, error) {
	body, contentType, err := payload.encode()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "build item request")
	}
	req.Header.Set("Content-Type", contentType)

	var item models.Item
	if err := c.do(req, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return errors.Wrap(err, "rate limiter")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("path", req.URL.Path).Warn("Request failed")
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	c.log.WithFields(logrus.Fields{
		"method":   req.Method,
		"path":     req.URL.Path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).Milliseconds(),
	}).Debug("Request completed")

	if resp.StatusCode >= http.StatusBadRequest {
		return newStatusError(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

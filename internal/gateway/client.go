package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"backoffice/internal/config"
	"backoffice/internal/domain"
	apperrors "backoffice/pkg/errors"
	"backoffice/pkg/logger"
)

// User-facing messages. Causes stay in the logs.
const (
	MsgFetchProviders  = "Failed to fetch providers"
	MsgFetchActivities = "Failed to fetch activities"
	MsgCreateProvider  = "Failed to create provider"
	MsgCreateActivity  = "Failed to create activity"
)

// maxBodyBytes caps how much of a response is read
const maxBodyBytes = 8 << 20

// Client talks to the remote booking API
type Client struct {
	cfg        config.API
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a client for the remote API. When a token URL is
// configured, requests carry a client-credentials bearer token.
func NewClient(ctx context.Context, cfg config.API, log *logger.Logger) *Client {
	base := &http.Client{Timeout: cfg.Timeout}

	httpClient := base
	if cfg.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		httpClient = cc.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     log,
	}
}

// ListProviders fetches and decodes the providers list. Elements that fail
// validation are logged and skipped.
func (c *Client) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	body, err := c.do(ctx, http.MethodGet, c.cfg.ProvidersPath, nil)
	if err != nil {
		return nil, apperrors.NewExternalError(MsgFetchProviders, err)
	}

	outcomes, err := DecodeProviders(body)
	if err != nil {
		c.logger.WithError(err).Error("Failed to decode providers payload")
		return nil, apperrors.NewExternalError(MsgFetchProviders, err)
	}

	providers, invalid := Split(outcomes)
	c.logInvalid("providers", invalid)
	return providers, nil
}

// ListActivities fetches, decodes and normalizes the activities list
func (c *Client) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	body, err := c.do(ctx, http.MethodGet, c.cfg.ActivitiesPath, nil)
	if err != nil {
		return nil, apperrors.NewExternalError(MsgFetchActivities, err)
	}

	outcomes, err := DecodeActivities(body)
	if err != nil {
		c.logger.WithError(err).Error("Failed to decode activities payload")
		return nil, apperrors.NewExternalError(MsgFetchActivities, err)
	}

	activities, invalid := Split(outcomes)
	c.logInvalid("activities", invalid)
	return activities, nil
}

// CreateProvider posts a new provider. The returned provider is the one echoed
// by the API, or the submitted values when the echo cannot be read.
func (c *Client) CreateProvider(ctx context.Context, req domain.CreateProviderRequest) (*domain.Provider, error) {
	body, err := c.do(ctx, http.MethodPost, c.cfg.ProviderCreatePath, req)
	if err != nil {
		return nil, apperrors.NewExternalError(MsgCreateProvider, err)
	}

	provider, err := DecodeProvider(body)
	if err != nil {
		c.logger.WithError(err).Warn("Provider created but response could not be decoded")
		provider = domain.Provider{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Company: req.Company,
		}
	}
	return &provider, nil
}

// CreateActivity posts a new activity and returns its identifier
func (c *Client) CreateActivity(ctx context.Context, req domain.CreateActivityRequest) (*domain.CreatedActivity, error) {
	body, err := c.do(ctx, http.MethodPost, c.cfg.ActivityCreatePath, req)
	if err != nil {
		return nil, apperrors.NewExternalError(MsgCreateActivity, err)
	}

	created, err := DecodeCreatedActivity(body)
	if err != nil {
		c.logger.WithError(err).Warn("Activity created but response carried no id")
		return &domain.CreatedActivity{}, nil
	}
	return &created, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	url := c.cfg.BaseURL + path

	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.WithFields(map[string]interface{}{
		"method": method,
		"url":    url,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Remote API call failed")
		return nil, fmt.Errorf("failed to call remote API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.WithError(err).Error("Failed to read remote API response")
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("status_code", resp.StatusCode).Error("Remote API returned an error status")
		return nil, fmt.Errorf("remote API returned status %d", resp.StatusCode)
	}

	log.WithField("status_code", resp.StatusCode).Debug("Remote API call succeeded")
	return body, nil
}

func (c *Client) logInvalid(collection string, invalid []*ValidationError) {
	for _, v := range invalid {
		c.logger.WithFields(map[string]interface{}{
			"collection": collection,
			"index":      v.Index,
			"field":      v.Field,
			"reason":     v.Reason,
		}).Warn("Skipping invalid element")
	}
}

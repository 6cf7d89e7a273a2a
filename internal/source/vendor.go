package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/whiskerlabs/litterlog/schema"
)

// Vendor API defaults.
const (
	defaultBaseURL    = "https://robot.api.whisker.app/v1"
	requestTimeout    = 15 * time.Second
	retryAttempts     = 3
	retryInitialDelay = 500 * time.Millisecond
	retryMaxDelay     = 5 * time.Second
)

// VendorConfig configures the vendor API client.
type VendorConfig struct {
	BaseURL     string
	Username    string
	Password    string
	RobotSerial string // optional; first robot on the account when empty
}

// VendorSource pulls activity history from the device-vendor account API.
// The flow mirrors the vendor apps: password login for a bearer token, list
// the account's robots, then page the chosen robot's activity feed.
type VendorSource struct {
	cfg    VendorConfig
	client *http.Client
	token  string
}

// NewVendorSource returns a vendor API client with a timeout-tuned transport.
func NewVendorSource(cfg VendorConfig) *VendorSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &VendorSource{
		cfg:    cfg,
		client: &http.Client{Timeout: requestTimeout, Transport: tr},
	}
}

// Name identifies the source in logs and fetch-run records.
func (s *VendorSource) Name() string { return "vendor" }

// Fetch logs in, resolves the robot and returns its newest-first activity.
func (s *VendorSource) Fetch(ctx context.Context, limit int) (*schema.CachedActivity, error) {
	if err := s.login(ctx); err != nil {
		return nil, fmt.Errorf("vendor login: %w", err)
	}

	robot, err := s.resolveRobot(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve robot: %w", err)
	}

	events, err := s.fetchActivity(ctx, robot.Serial, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch activity for %s: %w", robot.Serial, err)
	}

	return &schema.CachedActivity{
		RobotName:   robot.Name,
		RobotSerial: robot.Serial,
		FetchedAt:   time.Now().UTC(),
		Events:      events,
	}, nil
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (s *VendorSource) login(ctx context.Context) error {
	body := url.Values{}
	body.Set("grant_type", "password")
	body.Set("username", s.cfg.Username)
	body.Set("password", s.cfg.Password)

	var resp loginResponse
	err := s.doWithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/oauth/token", strings.NewReader(body.Encode()))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return s.decodeResponse(req, &resp)
	})
	if err != nil {
		return err
	}
	if resp.AccessToken == "" {
		return errors.New("login response missing access token")
	}
	s.token = resp.AccessToken
	return nil
}

type robotRecord struct {
	Serial string `json:"litterRobotSerial"`
	Name   string `json:"litterRobotNickname"`
}

func (s *VendorSource) resolveRobot(ctx context.Context) (*robotRecord, error) {
	var robots []robotRecord
	err := s.doWithRetry(ctx, func() error {
		req, err := s.authedRequest(ctx, s.cfg.BaseURL+"/robots")
		if err != nil {
			return err
		}
		return s.decodeResponse(req, &robots)
	})
	if err != nil {
		return nil, err
	}
	if len(robots) == 0 {
		return nil, errors.New("no robots found on this account")
	}
	if s.cfg.RobotSerial == "" {
		return &robots[0], nil
	}
	for i := range robots {
		if robots[i].Serial == s.cfg.RobotSerial {
			return &robots[i], nil
		}
	}
	return nil, fmt.Errorf("robot %s not found on this account", s.cfg.RobotSerial)
}

type activityRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"unitStatus"`
}

func (s *VendorSource) fetchActivity(ctx context.Context, serial string, limit int) ([]schema.RawEvent, error) {
	var records []activityRecord
	err := s.doWithRetry(ctx, func() error {
		endpoint := fmt.Sprintf("%s/robots/%s/activity?limit=%s", s.cfg.BaseURL, url.PathEscape(serial), strconv.Itoa(limit))
		req, err := s.authedRequest(ctx, endpoint)
		if err != nil {
			return err
		}
		return s.decodeResponse(req, &records)
	})
	if err != nil {
		return nil, err
	}

	events := make([]schema.RawEvent, len(records))
	for i, r := range records {
		events[i] = schema.RawEvent{Timestamp: r.Timestamp, Action: r.Action}
	}
	return events, nil
}

func (s *VendorSource) authedRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (s *VendorSource) decodeResponse(req *http.Request, out any) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// doWithRetry runs fn with exponential backoff. Context cancellation wins
// over the backoff timer.
func (s *VendorSource) doWithRetry(ctx context.Context, fn func() error) error {
	delay := retryInitialDelay
	var lastErr error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
			if delay > retryMaxDelay {
				delay = retryMaxDelay
			}
		}
		if lastErr = fn(); lastErr == nil {
			return nil
		}
	}
	return lastErr
}

package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

type Config struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`

	Breaker struct {
		MaxFailures uint32        `yaml:"max_failures"`
		OpenFor     time.Duration `yaml:"open_for"`
	} `yaml:"breaker"`
}

// NewClient builds a user directory client. All calls go through a
// circuit breaker: once the directory misbehaves, requests fail fast
// until the cooldown passes.
func NewClient(cfg Config, log logger.Logger) *Client {
	breakerLog := log.With("user_directory_breaker")

	return &Client{
		base: cfg.BaseURL,
		http: &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "user-directory",
			Timeout: cfg.Breaker.OpenFor,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.Breaker.MaxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				breakerLog.Warnf("%s: %s -> %s", name, from, to)
			},
		}),
		log: log.With("user_directory"),
	}
}

type Client struct {
	base    string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	log     logger.Logger
}

// Exists asks the directory whether the user is known.
func (c *Client) Exists(ctx context.Context, userID string) (bool, error) {
	known, err := c.breaker.Execute(func() (any, error) {
		return c.exists(ctx, userID)
	})
	if err != nil {
		return false, errors.WrapFailf(err, "check user %s in directory", userID)
	}

	return known.(bool), nil
}

func (c *Client) exists(ctx context.Context, userID string) (bool, error) {
	url := fmt.Sprintf("%s/users/%s/exists", c.base, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, errors.WrapFail(err, "build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, errors.WrapFail(err, "call user directory")
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return false, nil
	case http.StatusOK:
	default:
		return false, errors.Errorf("user directory replied %d", resp.StatusCode)
	}

	var known bool
	err = json.NewDecoder(resp.Body).Decode(&known)
	if err != nil {
		return false, errors.WrapFail(err, "decode directory response")
	}

	return known, nil
}

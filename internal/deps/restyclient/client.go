package restyclient

import (
  "context"
  "fmt"
  "time"

  "github.com/go-resty/resty/v2"
  "github.com/ushakovn/instock/internal/models"
  "github.com/ushakovn/instock/pkg/stringer"
)

const (
  defaultTimeout  = 45 * time.Second
  statusBodyLimit = 2000
  acceptHeader    = "application/json, text/plain, */*"
)

type Config struct {
  Timeout time.Duration
}

// Client fetches pages over plain HTTP. Each session gets its own
// connection pool and cookies.
type Client struct {
  config Config
}

func NewClient(config Config) *Client {
  if config.Timeout <= 0 {
    config.Timeout = defaultTimeout
  }
  return &Client{config: config}
}

func (c *Client) NewSession(_ context.Context, params models.SessionParams) (models.Session, error) {
  client := resty.New().
    SetTimeout(c.config.Timeout).
    SetHeader("Accept", acceptHeader)

  if params.UserAgent != "" {
    client.SetHeader("User-Agent", params.UserAgent)
  }
  if params.Locale != "" {
    client.SetHeader("Accept-Language", params.Locale)
  }

  return &Session{client: client}, nil
}

func (c *Client) Close() error {
  return nil
}

type Session struct {
  client *resty.Client
}

func (s *Session) Load(ctx context.Context, url string) (string, error) {
  resp, err := s.client.R().SetContext(ctx).Get(url)
  if err != nil {
    return "", fmt.Errorf("s.client.R().Get: %w", err)
  }

  if !resp.IsSuccess() {
    return "", &models.StatusError{
      URL:        url,
      StatusCode: resp.StatusCode(),
      Body:       stringer.Truncate(resp.String(), statusBodyLimit),
    }
  }

  return resp.String(), nil
}

func (s *Session) Close() error {
  s.client.GetClient().CloseIdleConnections()
  return nil
}

package tlsclient

import (
  "context"
  "fmt"
  "io"
  "time"

  http "github.com/bogdanfinn/fhttp"
  tls_client "github.com/bogdanfinn/tls-client"
  "github.com/bogdanfinn/tls-client/profiles"
  "github.com/ushakovn/instock/internal/models"
  "github.com/ushakovn/instock/pkg/stringer"
)

const (
  defaultTimeout  = 45 * time.Second
  statusBodyLimit = 2000
  acceptHeader    = "application/json, text/plain, */*"
)

var headerOrder = []string{
  "accept",
  "accept-language",
  "user-agent",
}

type Config struct {
  Timeout time.Duration
}

// Client fetches pages over HTTP with a Chrome TLS fingerprint.
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
  options := []tls_client.HttpClientOption{
    tls_client.WithTimeoutSeconds(int(c.config.Timeout.Seconds())),
    tls_client.WithClientProfile(profiles.Chrome_120),
    tls_client.WithCookieJar(tls_client.NewCookieJar()),
  }

  client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
  if err != nil {
    return nil, fmt.Errorf("tls_client.NewHttpClient: %w", err)
  }

  return &Session{
    client: client,
    params: params,
  }, nil
}

func (c *Client) Close() error {
  return nil
}

type Session struct {
  client tls_client.HttpClient
  params models.SessionParams
}

func (s *Session) Load(ctx context.Context, url string) (string, error) {
  req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
  if err != nil {
    return "", fmt.Errorf("http.NewRequestWithContext: %w", err)
  }

  req.Header = http.Header{
    "Accept":            {acceptHeader},
    http.HeaderOrderKey: headerOrder,
  }
  if s.params.UserAgent != "" {
    req.Header.Set("User-Agent", s.params.UserAgent)
  }
  if s.params.Locale != "" {
    req.Header.Set("Accept-Language", s.params.Locale)
  }

  resp, err := s.client.Do(req)
  if err != nil {
    return "", fmt.Errorf("s.client.Do: %w", err)
  }
  defer resp.Body.Close()

  body, err := io.ReadAll(resp.Body)
  if err != nil {
    return "", fmt.Errorf("io.ReadAll: %w", err)
  }

  if !models.IsSuccessStatus(resp.StatusCode) {
    return "", &models.StatusError{
      URL:        url,
      StatusCode: resp.StatusCode,
      Body:       stringer.Truncate(string(body), statusBodyLimit),
    }
  }

  return string(body), nil
}

func (s *Session) Close() error {
  return nil
}

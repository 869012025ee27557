package config

import (
  "errors"
  "fmt"
  "os"
  "strings"
  "time"

  "github.com/go-playground/validator/v10"
  "github.com/spf13/cast"
  "github.com/ushakovn/instock/internal/models"
  rules "github.com/ushakovn/instock/pkg/validator"
)

type FetchClient string

const (
  FetchClientChromedp FetchClient = "chromedp"
  FetchClientResty    FetchClient = "resty"
  FetchClientTLS      FetchClient = "tls"
)

const (
  BotToken         = "BOT_TOKEN"
  ChannelId        = "CHANNEL_ID"
  DebugChannelId   = "DEBUG_CHANNEL_ID"
  PollInterval     = "POLL_INTERVAL"
  FetchTimeout     = "FETCH_TIMEOUT"
  FetchClientKind  = "FETCH_CLIENT"
  BrowserHeadless  = "BROWSER_HEADLESS"
  BrowserExecPath  = "BROWSER_EXEC_PATH"
  BrowserLocale    = "BROWSER_LOCALE"
  DebugReports     = "DEBUG_REPORTS"
  ExitOnCycleError = "EXIT_ON_CYCLE_ERROR"
  CatalogPath      = "CATALOG_PATH"
)

const (
  defaultChannelId      = "@nvidia_fe"
  defaultDebugChannelId = "@nvidia_fe_debug"
  defaultPollInterval   = 60 * time.Second
  defaultFetchTimeout   = 45 * time.Second
  defaultBrowserLocale  = "en-US"
)

var ErrMissingToken = errors.New("BOT_TOKEN environment variable is not set")

type Config struct {
  BotToken         string         `validate:"required"`
  ChannelId        string         `validate:"required"`
  DebugChannelId   string
  PollInterval     time.Duration  `validate:"gt=0"`
  FetchTimeout     time.Duration  `validate:"gt=0"`
  FetchClient      FetchClient    `validate:"oneof=chromedp resty tls"`
  BrowserHeadless  bool
  BrowserExecPath  string
  BrowserLocale    string         `validate:"required"`
  DebugReports     bool
  ExitOnCycleError bool
  Catalog          models.Catalog
}

func (c *Config) Validate() error {
  if err := validator.New().Struct(c); err != nil {
    return err
  }
  if err := rules.Locale(c.BrowserLocale); err != nil {
    return fmt.Errorf("invalid browser locale %q: %w", c.BrowserLocale, err)
  }
  if err := ValidateCatalog(c.Catalog); err != nil {
    return fmt.Errorf("invalid catalog: %w", err)
  }
  return nil
}

// Load reads the process environment.
func Load() (*Config, error) {
  return LoadFrom(os.Getenv)
}

func LoadFrom(getenv func(string) string) (*Config, error) {
  env := lookup(getenv)

  token := env(BotToken)
  if token == "" {
    return nil, ErrMissingToken
  }

  config := &Config{
    BotToken:        token,
    ChannelId:       env(ChannelId, defaultChannelId),
    DebugChannelId:  env(DebugChannelId, defaultDebugChannelId),
    FetchClient:     FetchClient(strings.ToLower(env(FetchClientKind, string(FetchClientChromedp)))),
    BrowserExecPath: env(BrowserExecPath),
    BrowserLocale:   env(BrowserLocale, defaultBrowserLocale),
  }
  var err error

  if config.PollInterval, err = durationEnv(env, PollInterval, defaultPollInterval); err != nil {
    return nil, err
  }
  if config.FetchTimeout, err = durationEnv(env, FetchTimeout, defaultFetchTimeout); err != nil {
    return nil, err
  }
  if config.BrowserHeadless, err = boolEnv(env, BrowserHeadless, true); err != nil {
    return nil, err
  }
  if config.DebugReports, err = boolEnv(env, DebugReports, true); err != nil {
    return nil, err
  }
  if config.ExitOnCycleError, err = boolEnv(env, ExitOnCycleError, false); err != nil {
    return nil, err
  }

  if path := env(CatalogPath); path != "" {
    catalog, err := LoadCatalog(path)
    if err != nil {
      return nil, fmt.Errorf("config.LoadCatalog: %w", err)
    }
    config.Catalog = *catalog
  } else {
    config.Catalog = DefaultCatalog()
  }

  if err = config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  return config, nil
}

type envFunc func(key string, fallback ...string) string

func lookup(getenv func(string) string) envFunc {
  return func(key string, fallback ...string) string {
    if value := strings.TrimSpace(getenv(key)); value != "" {
      return value
    }
    if len(fallback) > 0 {
      return fallback[0]
    }
    return ""
  }
}

func durationEnv(env envFunc, key string, fallback time.Duration) (time.Duration, error) {
  value := env(key)
  if value == "" {
    return fallback, nil
  }
  duration, err := cast.ToDurationE(value)
  if err != nil {
    return 0, fmt.Errorf("%s: cast.ToDurationE: %w", key, err)
  }
  return duration, nil
}

func boolEnv(env envFunc, key string, fallback bool) (bool, error) {
  value := env(key)
  if value == "" {
    return fallback, nil
  }
  flag, err := cast.ToBoolE(value)
  if err != nil {
    return false, fmt.Errorf("%s: cast.ToBoolE: %w", key, err)
  }
  return flag, nil
}

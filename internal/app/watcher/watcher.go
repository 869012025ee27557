package watcher

import (
  "context"
  "fmt"
  "time"

  "github.com/go-playground/validator/v10"
  "github.com/ushakovn/instock/internal/models"
)

const defaultStopTimeout = 10 * time.Second

// Checker runs one polling cycle with the given fetcher.
type Checker interface {
  Check(ctx context.Context, fetcher models.Fetcher) error
}

type UserAgents interface {
  Generate() string
}

type Watcher struct {
  config Config
  deps   Dependencies
}

type Config struct {
  Interval         time.Duration `validate:"gt=0"`
  BrowserLocale    string        `validate:"required"`
  DebugChannelId   string
  ExitOnCycleError bool
  StopTimeout      time.Duration
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

type Dependencies struct {
  Browser    models.Browser  `validate:"required"`
  Tracker    Checker         `validate:"required"`
  Notifier   models.Notifier `validate:"required"`
  UserAgents UserAgents      `validate:"required"`
}

func (d *Dependencies) Validate() error {
  return validator.New().Struct(d)
}

func NewWatcher(config Config, deps Dependencies) (*Watcher, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  if config.StopTimeout <= 0 {
    config.StopTimeout = defaultStopTimeout
  }

  return &Watcher{
    config: config,
    deps:   deps,
  }, nil
}

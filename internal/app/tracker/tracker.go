package tracker

import (
  "fmt"

  "github.com/go-playground/validator/v10"
  "github.com/ushakovn/instock/internal/models"
)

type Tracker struct {
  config Config
  deps   Dependencies
  status *Status
}

type Config struct {
  Products       []models.Product `validate:"required,min=1,dive"`
  Locales        []models.Locale  `validate:"required,min=1"`
  ChannelId      string           `validate:"required"`
  DebugChannelId string
  DebugReports   bool
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

type Dependencies struct {
  Notifier models.Notifier `validate:"required"`
}

func (d *Dependencies) Validate() error {
  return validator.New().Struct(d)
}

func NewTracker(config Config, deps Dependencies) (*Tracker, error) {
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }

  return &Tracker{
    config: config,
    deps:   deps,
    status: NewStatus(config.Products),
  }, nil
}

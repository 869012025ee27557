package sender

import (
  "context"
  "fmt"
  "strings"

  "github.com/go-playground/validator/v10"
  telegram "github.com/go-telegram/bot"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/instock/internal/models"
)

// Sender delivers plain text messages to telegram channels.
type Sender struct {
  deps Dependencies
}

type Dependencies struct {
  Telegram *telegram.Bot `validate:"required"`
}

func (d *Dependencies) Validate() error {
  return validator.New().Struct(d)
}

func NewSender(deps Dependencies) (*Sender, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  return &Sender{deps: deps}, nil
}

func (c *Sender) Notify(ctx context.Context, chatId string, text string) error {
  if chatId == "" {
    return fmt.Errorf("%w: chat id not specified", models.ErrNotify)
  }

  sent, err := c.deps.Telegram.SendMessage(ctx, &telegram.SendMessageParams{
    ChatID: chatId,
    Text:   strings.TrimSpace(text),
  })
  if err != nil {
    return fmt.Errorf("%w: c.deps.Telegram.SendMessage: %w", models.ErrNotify, err)
  }

  log.
    WithFields(log.Fields{
      "message.chat_id": chatId,
      "message.sent_id": sent.ID,
    }).
    Info("message sent to telegram chat")

  return nil
}

package telegram

import (
  "fmt"

  tgbot "github.com/go-telegram/bot"
  log "github.com/sirupsen/logrus"
)

type Config struct {
  Token     string
  ServerURL string
  SkipGetMe bool
}

func NewBotClient(config Config) (*tgbot.Bot, error) {
  if config.Token == "" {
    return nil, fmt.Errorf("telegram token not specified")
  }

  var opts []tgbot.Option

  if config.ServerURL != "" {
    opts = append(opts, tgbot.WithServerURL(config.ServerURL))
  }
  if config.SkipGetMe {
    opts = append(opts, tgbot.WithSkipGetMe())
  }

  bot, err := tgbot.New(config.Token, opts...)
  if err != nil {
    return nil, fmt.Errorf("tgbot.New: %w", err)
  }
  log.Info("telegram bot client connection successfully")

  return bot, nil
}

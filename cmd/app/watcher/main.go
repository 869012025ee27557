package main

import (
  "context"
  "fmt"
  "os"
  "os/signal"
  "syscall"
  "time"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/instock/internal/app/sender"
  "github.com/ushakovn/instock/internal/app/tracker"
  "github.com/ushakovn/instock/internal/app/watcher"
  "github.com/ushakovn/instock/internal/config"
  "github.com/ushakovn/instock/internal/deps/browser"
  "github.com/ushakovn/instock/internal/deps/restyclient"
  "github.com/ushakovn/instock/internal/deps/telegram"
  "github.com/ushakovn/instock/internal/deps/tlsclient"
  "github.com/ushakovn/instock/internal/models"
  "github.com/ushakovn/instock/pkg/logger"
  "github.com/ushakovn/instock/pkg/useragent"
)

func main() {
  logger.InitWithFields(map[string]any{
    "app": "instock",
  })

  cfg, err := config.Load()
  if err != nil {
    log.Fatalf("config.Load: %v", err)
  }

  ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

  err = run(ctx, cfg)
  stop()

  if err != nil {
    log.Fatalf("run: %v", err)
  }
  log.Info("instock watcher stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
  bot, err := telegram.NewBotClient(telegram.Config{
    Token: cfg.BotToken,
  })
  if err != nil {
    return fmt.Errorf("telegram.NewBotClient: %w", err)
  }

  notifier, err := sender.NewSender(sender.Dependencies{
    Telegram: bot,
  })
  if err != nil {
    return fmt.Errorf("sender.NewSender: %w", err)
  }

  pages, err := newBrowser(ctx, cfg)
  if err != nil {
    return fmt.Errorf("newBrowser: %w", err)
  }
  defer func() {
    if err := pages.Close(); err != nil {
      log.Warnf("browser.Close: %v", err)
    }
  }()

  stock, err := tracker.NewTracker(
    tracker.Config{
      Products:       cfg.Catalog.Products,
      Locales:        cfg.Catalog.Locales,
      ChannelId:      cfg.ChannelId,
      DebugChannelId: cfg.DebugChannelId,
      DebugReports:   cfg.DebugReports,
    },
    tracker.Dependencies{
      Notifier: notifier,
    },
  )
  if err != nil {
    return fmt.Errorf("tracker.NewTracker: %w", err)
  }

  loop, err := watcher.NewWatcher(
    watcher.Config{
      Interval:         cfg.PollInterval,
      BrowserLocale:    cfg.BrowserLocale,
      DebugChannelId:   cfg.DebugChannelId,
      ExitOnCycleError: cfg.ExitOnCycleError,
    },
    watcher.Dependencies{
      Browser:    pages,
      Tracker:    stock,
      Notifier:   notifier,
      UserAgents: useragent.NewGenerator(time.Now().UnixNano()),
    },
  )
  if err != nil {
    return fmt.Errorf("watcher.NewWatcher: %w", err)
  }

  log.
    WithFields(log.Fields{
      "products":     len(cfg.Catalog.Products),
      "locales":      cfg.Catalog.Locales,
      "fetch.client": cfg.FetchClient,
    }).
    Info("instock watcher starting now")

  if err = loop.Start(ctx); err != nil {
    return fmt.Errorf("loop.Start: %w", err)
  }

  return nil
}

func newBrowser(ctx context.Context, cfg *config.Config) (models.Browser, error) {
  switch cfg.FetchClient {
  case config.FetchClientResty:
    return restyclient.NewClient(restyclient.Config{
      Timeout: cfg.FetchTimeout,
    }), nil

  case config.FetchClientTLS:
    return tlsclient.NewClient(tlsclient.Config{
      Timeout: cfg.FetchTimeout,
    }), nil

  default:
    chrome, err := browser.New(ctx, browser.Config{
      Headless: cfg.BrowserHeadless,
      ExecPath: cfg.BrowserExecPath,
      Timeout:  cfg.FetchTimeout,
    })
    if err != nil {
      return nil, fmt.Errorf("browser.New: %w", err)
    }
    return chrome, nil
  }
}

package watcher

import (
  "context"
  "fmt"
  "time"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/instock/internal/app/fetcher"
  "github.com/ushakovn/instock/internal/message"
  "github.com/ushakovn/instock/internal/models"
)

// Start polls until ctx is cancelled. A cancelled ctx is a normal stop and
// returns nil. A failed cycle is reported and polling goes on, unless the
// watcher is configured to exit on cycle errors.
func (w *Watcher) Start(ctx context.Context) error {
  log.
    WithFields(log.Fields{
      "interval":       w.config.Interval,
      "browser.locale": w.config.BrowserLocale,
    }).
    Info("watcher started")

  w.notifyDebug(ctx, message.BotStartedText)

  timer := time.NewTimer(0)
  defer timer.Stop()

  for {
    select {
    case <-ctx.Done():
      w.stop(ctx, message.BotStoppedText)
      return nil

    case <-timer.C:
    }

    started := time.Now()

    err := w.cycle(ctx)

    if ctx.Err() != nil {
      w.stop(ctx, message.BotStoppedText)
      return nil
    }

    if err != nil {
      log.Errorf("Error in check loop: %v", err)

      w.notifyDebug(ctx, message.CycleFailedText(err))

      if w.config.ExitOnCycleError {
        w.stop(ctx, message.ShutdownFailedText(err))
        return fmt.Errorf("w.cycle: %w", err)
      }
    } else {
      log.
        WithField("elapsed", time.Since(started).Round(time.Millisecond)).
        Info("check cycle completed")
    }

    timer.Reset(w.config.Interval)
  }
}

func (w *Watcher) cycle(ctx context.Context) (err error) {
  defer func() {
    if r := recover(); r != nil {
      err = fmt.Errorf("check cycle panic: %v", r)
    }
  }()

  session, err := w.deps.Browser.NewSession(ctx, models.SessionParams{
    UserAgent: w.deps.UserAgents.Generate(),
    Locale:    w.config.BrowserLocale,
  })
  if err != nil {
    return fmt.Errorf("w.deps.Browser.NewSession: %w", err)
  }

  defer func() {
    if closeErr := session.Close(); closeErr != nil {
      log.Warnf("session.Close: %v", closeErr)
    }
  }()

  inventory, err := fetcher.NewFetcher(fetcher.Dependencies{
    Loader: session,
  })
  if err != nil {
    return fmt.Errorf("fetcher.NewFetcher: %w", err)
  }

  if err = w.deps.Tracker.Check(ctx, inventory); err != nil {
    return fmt.Errorf("w.deps.Tracker.Check: %w", err)
  }

  return nil
}

func (w *Watcher) stop(ctx context.Context, text string) {
  log.Info("watcher stopping")

  ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.config.StopTimeout)
  defer cancel()

  w.notifyDebug(ctx, text)
}

func (w *Watcher) notifyDebug(ctx context.Context, text string) {
  if w.config.DebugChannelId == "" {
    return
  }
  if err := w.deps.Notifier.Notify(ctx, w.config.DebugChannelId, text); err != nil {
    log.
      WithField("chat_id", w.config.DebugChannelId).
      Errorf("w.deps.Notifier.Notify: %v", err)
  }
}

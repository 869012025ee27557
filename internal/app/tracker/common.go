package tracker

import (
  "context"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/instock/internal/message"
  "github.com/ushakovn/instock/internal/models"
)

func (c *Tracker) reportProbeFailure(ctx context.Context, result models.ProbeResult) {
  if !c.config.DebugReports || c.config.DebugChannelId == "" {
    return
  }
  if ctx.Err() != nil {
    return
  }

  built := message.Do().
    SetProduct(result.Product).
    SetProbe(result).
    BuildProbeFailedMessage()

  if !built.IsSendable {
    return
  }
  c.notify(ctx, c.config.DebugChannelId, built.Text)
}

func (c *Tracker) notify(ctx context.Context, chatId, text string) {
  if err := c.deps.Notifier.Notify(ctx, chatId, text); err != nil {
    log.
      WithField("chat_id", chatId).
      Errorf("c.deps.Notifier.Notify: %v", err)
  }
}

package tracker

import (
  "context"
  "fmt"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/instock/internal/message"
  "github.com/ushakovn/instock/internal/models"
)

// Check runs one polling cycle over all products in declared order. Probe
// failures never abort the cycle; only context cancellation does.
func (c *Tracker) Check(ctx context.Context, fetcher models.Fetcher) error {
  if fetcher == nil {
    return fmt.Errorf("fetcher not specified")
  }

  for _, product := range c.config.Products {
    if err := ctx.Err(); err != nil {
      return fmt.Errorf("check interrupted: %w", err)
    }
    c.handleProduct(ctx, fetcher, product)
  }

  return nil
}

func (c *Tracker) Status() map[string]bool {
  return c.status.Snapshot()
}

func (c *Tracker) handleProduct(ctx context.Context, fetcher models.Fetcher, product models.Product) {
  verdict := c.probeProduct(ctx, fetcher, product)

  // An interrupted cycle has no verdict for this product.
  if ctx.Err() != nil {
    return
  }
  if !c.status.Transition(product.Name, verdict.IsAvailable()) {
    return
  }

  result := message.Do().
    SetProduct(product).
    SetProbe(verdict).
    BuildAvailableMessage()

  log.
    WithFields(log.Fields{
      "product.name": product.Name,
      "locale":       verdict.Locale,
    }).
    Infof("%s is now available! %s", product.Name, verdict.Record.Raw)

  if !result.IsSendable {
    return
  }
  c.notify(ctx, c.config.ChannelId, result.Text)
}

// probeProduct probes locales in declared order and stops at the first
// available one. The returned result is the available probe, or the last
// probe when none was available.
func (c *Tracker) probeProduct(ctx context.Context, fetcher models.Fetcher, product models.Product) models.ProbeResult {
  var last models.ProbeResult

  for _, locale := range c.config.Locales {
    if ctx.Err() != nil {
      break
    }
    last = c.probe(ctx, fetcher, product, locale)

    if last.IsAvailable() {
      return last
    }
  }

  return last
}

func (c *Tracker) probe(ctx context.Context, fetcher models.Fetcher, product models.Product, locale models.Locale) models.ProbeResult {
  record, err := fetcher.Fetch(ctx, product.QueryURL, locale)

  result := models.NewProbeResult(product, locale, record, err)

  fields := log.Fields{
    "product.name": product.Name,
    "locale":       locale,
  }

  if result.Failed() {
    log.
      WithFields(fields).
      Errorf("Error checking %s for locale %s: %v", product.Name, locale, err)

    c.reportProbeFailure(ctx, result)

    return result
  }

  log.
    WithFields(fields).
    WithField("available", result.IsAvailable()).
    Infof("fetched data for %s in %s: %s", product.Name, locale, record.Raw)

  return result
}

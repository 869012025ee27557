package message

import (
  "fmt"
  "strings"

  "github.com/samber/lo"
  "github.com/ushakovn/instock/internal/models"
  "github.com/ushakovn/instock/pkg/money"
  "github.com/ushakovn/instock/pkg/stringer"
)

const (
  rawRecordLimit = 1500
  errorTextLimit = 700
)

type Builder struct {
  product models.Product
  probe   models.ProbeResult
}

func Do() Builder {
  return Builder{}
}

func (b Builder) SetProduct(product models.Product) Builder {
  b.product = product
  return b
}

func (b Builder) SetProbe(probe models.ProbeResult) Builder {
  b.probe = probe
  return b
}

type BuildResult struct {
  Text       string
  IsSendable bool
}

func (b Builder) BuildAvailableMessage() BuildResult {
  if !b.probe.IsAvailable() {
    return BuildResult{}
  }

  sb := strings.Builder{}

  sb.WriteString(fmt.Sprintf("%s is now available!\n", b.product.Name))
  sb.WriteString(fmt.Sprintf("Locale: %s\n", b.probe.Locale))

  for _, listing := range b.probe.Record.ActiveListings() {
    sb.WriteString("\n")
    sb.WriteString(formatListing(listing))
  }

  if len(b.probe.Record.Raw) > 0 {
    sb.WriteString("\n")
    sb.WriteString(stringer.Truncate(string(b.probe.Record.Raw), rawRecordLimit))
  }

  return BuildResult{
    Text:       strings.TrimSpace(sb.String()),
    IsSendable: true,
  }
}

func (b Builder) BuildProbeFailedMessage() BuildResult {
  if !b.probe.Failed() {
    return BuildResult{}
  }

  text := fmt.Sprintf("Error checking %s for locale %s: %s",
    b.product.Name, b.probe.Locale, ErrorText(b.probe.Err))

  return BuildResult{
    Text:       text,
    IsSendable: true,
  }
}

func formatListing(listing models.Listing) string {
  parts := []string{
    lo.Ternary(listing.FeSku != "", listing.FeSku, "listing"),
  }
  if price, ok := money.Parse(listing.Price); ok {
    parts = append(parts, money.String(price))
  }
  if listing.ProductURL != "" {
    parts = append(parts, listing.ProductURL)
  }
  return strings.Join(parts, " | ") + "\n"
}

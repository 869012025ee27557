package models

// ProbeResult is the outcome of one locale probe. A failed probe is never
// available; its error is kept for reporting only.
type ProbeResult struct {
  Product Product
  Locale  Locale
  Record  *InventoryRecord
  Err     error
}

func NewProbeResult(product Product, locale Locale, record *InventoryRecord, err error) ProbeResult {
  if err != nil {
    record = nil
  }
  return ProbeResult{
    Product: product,
    Locale:  locale,
    Record:  record,
    Err:     err,
  }
}

func (r ProbeResult) Failed() bool {
  return r.Err != nil
}

func (r ProbeResult) IsAvailable() bool {
  return !r.Failed() && r.Record.IsAvailable()
}

package models

import (
  "bytes"
  "encoding/json"
  "errors"

  "github.com/samber/lo"
)

// ActiveFlag keeps the feed's string-typed "true"/"false" verbatim. Values
// that are not JSON strings decode to ActiveFlagUnknown.
type ActiveFlag string

const (
  ActiveFlagTrue    ActiveFlag = "true"
  ActiveFlagFalse   ActiveFlag = "false"
  ActiveFlagUnknown ActiveFlag = ""
)

func (f *ActiveFlag) UnmarshalJSON(data []byte) error {
  var value string

  if err := json.Unmarshal(data, &value); err != nil {
    *f = ActiveFlagUnknown
    return nil
  }
  *f = ActiveFlag(value)

  return nil
}

type Listing struct {
  IsActive   ActiveFlag `json:"is_active"`
  FeSku      string     `json:"fe_sku"`
  Price      string     `json:"price"`
  ProductURL string     `json:"product_url"`
  Locale     string     `json:"locale"`
}

// Listings tolerates a malformed collection: anything other than a JSON
// array decodes to an empty, malformed collection, and array entries that
// are not objects are skipped.
type Listings struct {
  Items     []Listing
  Malformed bool
}

func (l *Listings) UnmarshalJSON(data []byte) error {
  var raw []json.RawMessage

  if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
    *l = Listings{Malformed: !bytes.Equal(bytes.TrimSpace(data), []byte("null"))}
    return nil
  }

  items := make([]Listing, 0, len(raw))

  for _, entry := range raw {
    var listing Listing

    if !isJSONObject(entry) {
      l.Malformed = true
      continue
    }
    // Type mismatches leave the affected fields empty, the listing is kept.
    if err := json.Unmarshal(entry, &listing); err != nil {
      l.Malformed = true
    }
    items = append(items, listing)
  }
  l.Items = items

  return nil
}

type InventoryRecord struct {
  Success bool      `json:"success"`
  ListMap *Listings `json:"listMap"`

  Raw json.RawMessage `json:"-"`
}

// ParseInventoryRecord rejects invalid JSON. A valid document that is not an
// object yields a record without listings.
func ParseInventoryRecord(body []byte) (*InventoryRecord, error) {
  body = bytes.TrimSpace(body)

  if !json.Valid(body) {
    return nil, errInvalidJSON
  }
  record := InventoryRecord{
    Raw: append(json.RawMessage(nil), body...),
  }
  if !isJSONObject(body) {
    return &record, nil
  }
  if err := json.Unmarshal(body, &record); err != nil {
    var typeErr *json.UnmarshalTypeError
    if !errors.As(err, &typeErr) {
      return nil, err
    }
  }

  return &record, nil
}

// IsAvailable reports whether at least one listing is active. Missing or
// empty collections are never available.
func (r *InventoryRecord) IsAvailable() bool {
  return len(r.ActiveListings()) > 0
}

func (r *InventoryRecord) ActiveListings() []Listing {
  if r == nil || r.ListMap == nil {
    return nil
  }
  return lo.Filter(r.ListMap.Items, func(item Listing, _ int) bool {
    return item.IsActive == ActiveFlagTrue
  })
}

var errInvalidJSON = errors.New("body is not a valid json document")

func isJSONObject(data []byte) bool {
  trimmed := bytes.TrimSpace(data)
  return len(trimmed) > 0 && trimmed[0] == '{'
}

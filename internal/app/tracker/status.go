package tracker

import (
  "github.com/samber/lo"
  "github.com/ushakovn/instock/internal/models"
)

// Status holds the last known availability per product name. Entries are
// created for every product up front and never removed.
//
// Status is owned by a single Tracker and is not safe for concurrent use.
type Status struct {
  available map[string]bool
}

func NewStatus(products []models.Product) *Status {
  return &Status{
    available: lo.SliceToMap(products, func(product models.Product) (string, bool) {
      return product.Name, false
    }),
  }
}

// Transition stores the verdict and reports whether it is an
// unavailable -> available change.
func (s *Status) Transition(name string, available bool) (cameToStock bool) {
  previous := s.available[name]
  s.available[name] = available

  return available && !previous
}

func (s *Status) IsAvailable(name string) bool {
  return s.available[name]
}

func (s *Status) Snapshot() map[string]bool {
  return lo.Assign(s.available)
}

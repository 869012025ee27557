package tracker

import (
  "testing"

  "github.com/ushakovn/instock/internal/models"
)

func TestStatusTransition(t *testing.T) {
  status := NewStatus([]models.Product{{Name: "5090"}, {Name: "5080"}})

  steps := []struct {
    available   bool
    cameToStock bool
  }{
    {available: false, cameToStock: false},
    {available: true, cameToStock: true},
    {available: true, cameToStock: false},
    {available: false, cameToStock: false},
    {available: true, cameToStock: true},
  }

  for i, step := range steps {
    if got := status.Transition("5090", step.available); got != step.cameToStock {
      t.Fatalf("step %d: Transition = %v, want %v", i, got, step.cameToStock)
    }
    if got := status.IsAvailable("5090"); got != step.available {
      t.Fatalf("step %d: IsAvailable = %v, want %v", i, got, step.available)
    }
  }

  snapshot := status.Snapshot()
  if len(snapshot) != 2 || snapshot["5080"] {
    t.Fatalf("unexpected snapshot: %v", snapshot)
  }

  snapshot["5080"] = true
  if status.IsAvailable("5080") {
    t.Fatal("snapshot must not alias the status")
  }
}

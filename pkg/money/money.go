package money

import (
  "github.com/leekchan/accounting"
  "github.com/spf13/cast"
  "github.com/ushakovn/instock/pkg/stringer"
)

var acc = accounting.Accounting{
  Precision: 2,
  Thousand:  " ",
  Decimal:   ".",
}

func String(value float64) string {
  return acc.FormatMoney(value)
}

// Parse accepts vendor prices like "2099.00" or "2 099,00".
func Parse(value string) (float64, bool) {
  if stringer.NormalizeIntStr(value) == "" {
    return 0, false
  }
  parsed, err := cast.ToFloat64E(stringer.NormalizeFloatStr(value))
  if err != nil {
    return 0, false
  }
  return parsed, true
}

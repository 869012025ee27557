package stringer

import (
  "fmt"
  "html"
  "regexp"
  "strings"
  "unicode/utf8"

  "github.com/microcosm-cc/bluemonday"
)

var (
  policy         = bluemonday.StrictPolicy()
  RegexNonDigit  = regexp.MustCompile(`[^0-9]`)
  RegexNonFloat  = regexp.MustCompile(`[^0-9.,]`)
  RegexRepeatSep = regexp.MustCompile(`\s{2,}`)
)

func StripTags(s string) string {
  return SanitizeString(policy.Sanitize(s))
}

func Strip(s string) string {
  return strings.TrimSpace(s)
}

func IsEmptyStr(s string) bool {
  return Strip(s) == ""
}

func SanitizeString(s string) string {
  s = RegexRepeatSep.ReplaceAllLiteralString(s, " ")
  s = html.UnescapeString(s)
  s = strings.TrimSpace(s)
  return s
}

// Truncate cuts s to at most limit runes and marks the cut with an ellipsis.
func Truncate(s string, limit int) string {
  if limit <= 0 || utf8.RuneCountInString(s) <= limit {
    return s
  }
  runes := []rune(s)
  return string(runes[:limit]) + "..."
}

func NormalizeFloatStr(s string) string {
  const (
    sepComma      = ","
    sepPoint      = "."
    zeroAmountStr = "0"
    replaceFirst  = 1
  )
  var frac string
  s = strings.Replace(s, sepComma, sepPoint, replaceFirst)
  s = RegexNonFloat.ReplaceAllString(s, "")
  parts := strings.Split(s, sepPoint)
  count := len(parts)
  if count == 0 || s == "" {
    return zeroAmountStr
  }
  if count > 1 {
    frac = parts[count-1]
    if frac == "" {
      return zeroAmountStr
    }
    s = strings.Join(parts[:count-1], "")
    s = fmt.Sprint(s, sepPoint, frac)
  }
  return s
}

func NormalizeIntStr(s string) string {
  return RegexNonDigit.ReplaceAllLiteralString(s, "")
}

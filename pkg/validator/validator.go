package validator

import (
  "errors"
  "fmt"
  "net/url"

  "golang.org/x/text/language"
)

// URL accepts absolute http(s) URLs only.
func URL(value string) error {
  parsed, err := url.ParseRequestURI(value)
  if err != nil {
    return err
  }
  if parsed.Scheme != "http" && parsed.Scheme != "https" {
    return fmt.Errorf("unsupported scheme: %q", parsed.Scheme)
  }
  if parsed.Host == "" {
    return errors.New("missing host")
  }
  return nil
}

// Locale accepts BCP 47 tags in any case, e.g. sv-se or en-US.
func Locale(value string) error {
  _, err := language.Parse(value)
  return err
}

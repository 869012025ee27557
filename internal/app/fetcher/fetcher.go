package fetcher

import (
  "context"
  "fmt"
  neturl "net/url"
  "strings"

  "github.com/go-playground/validator/v10"
  "github.com/ushakovn/instock/internal/models"
  "github.com/ushakovn/instock/pkg/parser/xpath"
)

const localeParam = "locale"

type Fetcher struct {
  deps Dependencies
}

type Dependencies struct {
  Loader models.Loader `validate:"required"`
}

func (d *Dependencies) Validate() error {
  return validator.New().Struct(d)
}

func NewFetcher(deps Dependencies) (*Fetcher, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  return &Fetcher{deps: deps}, nil
}

func (f *Fetcher) Fetch(ctx context.Context, queryURL string, locale models.Locale) (*models.InventoryRecord, error) {
  url, err := LocaleURL(queryURL, locale)
  if err != nil {
    return nil, fmt.Errorf("%w: LocaleURL: %w", models.ErrFetch, err)
  }

  content, err := f.deps.Loader.Load(ctx, url)
  if err != nil {
    return nil, fmt.Errorf("%w: f.deps.Loader.Load: %w", models.ErrFetch, err)
  }

  text, err := PlainText(url, content)
  if err != nil {
    return nil, fmt.Errorf("%w: PlainText: %w", models.ErrParse, err)
  }

  record, err := models.ParseInventoryRecord([]byte(text))
  if err != nil {
    return nil, fmt.Errorf("%w: models.ParseInventoryRecord: %w. url: %s", models.ErrParse, err, url)
  }

  return record, nil
}

// LocaleURL qualifies the product query with the locale parameter, replacing
// any locale already present.
func LocaleURL(queryURL string, locale models.Locale) (string, error) {
  parsed, err := neturl.Parse(queryURL)
  if err != nil {
    return "", fmt.Errorf("url.Parse: %w", err)
  }
  if !parsed.IsAbs() {
    return "", fmt.Errorf("query url is not absolute: %s", queryURL)
  }

  query := parsed.Query()
  query.Set(localeParam, locale)
  parsed.RawQuery = query.Encode()

  return parsed.String(), nil
}

// PlainText unwraps a rendered page: browsers display JSON documents inside
// a <pre> element. Raw bodies are returned as is.
func PlainText(url, content string) (string, error) {
  trimmed := strings.TrimSpace(content)

  if !strings.HasPrefix(trimmed, "<") {
    return trimmed, nil
  }

  doc, err := xpath.ParseHtmlDoc(url, trimmed)
  if err != nil {
    return "", fmt.Errorf("xpath.ParseHtmlDoc: %w", err)
  }

  text, ok := xpath.FirstText(doc, "//pre", "//body")
  if !ok {
    return "", fmt.Errorf("page has no text content. url: %s", url)
  }

  return strings.TrimSpace(text), nil
}

package fetcher

import (
  "context"
  "errors"
  "testing"

  "github.com/ushakovn/instock/internal/models"
)

type loaderFunc func(ctx context.Context, url string) (string, error)

func (f loaderFunc) Load(ctx context.Context, url string) (string, error) {
  return f(ctx, url)
}

const queryURL = "https://api.store.example.com/partner/v1/feinventory?skus=NVGFT590"

func TestLocaleURL(t *testing.T) {
  tests := []struct {
    name    string
    query   string
    locale  string
    want    string
    wantErr bool
  }{
    {
      name:   "appends locale",
      query:  queryURL,
      locale: "sv-se",
      want:   "https://api.store.example.com/partner/v1/feinventory?locale=sv-se&skus=NVGFT590",
    },
    {
      name:   "replaces locale",
      query:  queryURL + "&locale=de-de",
      locale: "es-es",
      want:   "https://api.store.example.com/partner/v1/feinventory?locale=es-es&skus=NVGFT590",
    },
    {
      name:   "no query",
      query:  "https://api.store.example.com/inventory",
      locale: "sv-se",
      want:   "https://api.store.example.com/inventory?locale=sv-se",
    },
    {
      name:    "relative url",
      query:   "/inventory?skus=1",
      locale:  "sv-se",
      wantErr: true,
    },
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      got, err := LocaleURL(tt.query, tt.locale)
      if (err != nil) != tt.wantErr {
        t.Fatalf("LocaleURL error = %v, wantErr %v", err, tt.wantErr)
      }
      if got != tt.want {
        t.Fatalf("LocaleURL = %q, want %q", got, tt.want)
      }
    })
  }
}

func TestFetch(t *testing.T) {
  transportErr := errors.New("net::ERR_CONNECTION_RESET")

  tests := []struct {
    name      string
    content   string
    loadErr   error
    available bool
    errIs     error
  }{
    {
      name:      "raw json body",
      content:   `{"listMap":[{"is_active":"true"}]}`,
      available: true,
    },
    {
      name:      "rendered json page",
      content:   `<html><head></head><body><pre>{"listMap":[{"is_active":"false"}]}</pre></body></html>`,
      available: false,
    },
    {
      name:    "transport failure",
      loadErr: transportErr,
      errIs:   models.ErrFetch,
    },
    {
      name:    "non success status",
      loadErr: &models.StatusError{URL: queryURL, StatusCode: 403},
      errIs:   models.ErrFetch,
    },
    {
      name:    "invalid json",
      content: `<html><body><pre>{"listMap":[</pre></body></html>`,
      errIs:   models.ErrParse,
    },
    {
      name:    "captcha page",
      content: `<html><body><h1>Access Denied</h1></body></html>`,
      errIs:   models.ErrParse,
    },
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      var requested string

      f, err := NewFetcher(Dependencies{
        Loader: loaderFunc(func(ctx context.Context, url string) (string, error) {
          requested = url
          return tt.content, tt.loadErr
        }),
      })
      if err != nil {
        t.Fatalf("NewFetcher: %v", err)
      }

      record, err := f.Fetch(context.Background(), queryURL, "sv-se")

      if requested != "https://api.store.example.com/partner/v1/feinventory?locale=sv-se&skus=NVGFT590" {
        t.Fatalf("requested url = %q", requested)
      }
      if tt.errIs != nil {
        if !errors.Is(err, tt.errIs) {
          t.Fatalf("Fetch error = %v, want %v", err, tt.errIs)
        }
        if record != nil {
          t.Fatalf("Fetch returned record with error")
        }
        return
      }
      if err != nil {
        t.Fatalf("Fetch error: %v", err)
      }
      if got := record.IsAvailable(); got != tt.available {
        t.Fatalf("IsAvailable() = %v, want %v", got, tt.available)
      }
    })
  }
}

func TestFetchKeepsLoaderError(t *testing.T) {
  statusErr := &models.StatusError{URL: queryURL, StatusCode: 503}

  f, err := NewFetcher(Dependencies{
    Loader: loaderFunc(func(ctx context.Context, url string) (string, error) {
      return "", statusErr
    }),
  })
  if err != nil {
    t.Fatal(err)
  }

  _, err = f.Fetch(context.Background(), queryURL, "es-es")

  var target *models.StatusError
  if !errors.As(err, &target) || target.StatusCode != 503 {
    t.Fatalf("expected wrapped status error, got %v", err)
  }
}

func TestNewFetcherRequiresLoader(t *testing.T) {
  if _, err := NewFetcher(Dependencies{}); err == nil {
    t.Fatal("expected error without loader")
  }
}

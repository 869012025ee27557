package config

import (
  "errors"
  "os"
  "path/filepath"
  "testing"
  "time"
)

func envMap(values map[string]string) func(string) string {
  return func(key string) string {
    return values[key]
  }
}

func writeCatalog(t *testing.T, content string) string {
  t.Helper()
  path := filepath.Join(t.TempDir(), "catalog.yaml")
  if err := os.WriteFile(path, []byte(content), 0644); err != nil {
    t.Fatal(err)
  }
  return path
}

func TestLoadFrom_MissingToken(t *testing.T) {
  _, err := LoadFrom(envMap(map[string]string{BotToken: "  "}))
  if !errors.Is(err, ErrMissingToken) {
    t.Fatalf("err = %v, want ErrMissingToken", err)
  }
}

func TestLoadFrom_Defaults(t *testing.T) {
  cfg, err := LoadFrom(envMap(map[string]string{BotToken: "123:abc"}))
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if cfg.ChannelId != "@nvidia_fe" {
    t.Errorf("ChannelId = %q", cfg.ChannelId)
  }
  if cfg.DebugChannelId != "@nvidia_fe_debug" {
    t.Errorf("DebugChannelId = %q", cfg.DebugChannelId)
  }
  if cfg.PollInterval != time.Minute {
    t.Errorf("PollInterval = %v, want 1m", cfg.PollInterval)
  }
  if cfg.FetchTimeout != 45*time.Second {
    t.Errorf("FetchTimeout = %v, want 45s", cfg.FetchTimeout)
  }
  if cfg.FetchClient != FetchClientChromedp {
    t.Errorf("FetchClient = %q", cfg.FetchClient)
  }
  if !cfg.BrowserHeadless || !cfg.DebugReports || cfg.ExitOnCycleError {
    t.Errorf("unexpected flags: headless=%v debug=%v exit=%v",
      cfg.BrowserHeadless, cfg.DebugReports, cfg.ExitOnCycleError)
  }
  if cfg.BrowserLocale != "en-US" {
    t.Errorf("BrowserLocale = %q", cfg.BrowserLocale)
  }
  if len(cfg.Catalog.Products) != 7 {
    t.Errorf("expected 7 default products, got %d", len(cfg.Catalog.Products))
  }
  if len(cfg.Catalog.Locales) != 2 || cfg.Catalog.Locales[0] != "sv-se" || cfg.Catalog.Locales[1] != "es-es" {
    t.Errorf("Locales = %v", cfg.Catalog.Locales)
  }
}

func TestLoadFrom_Overrides(t *testing.T) {
  cfg, err := LoadFrom(envMap(map[string]string{
    BotToken:         "123:abc",
    ChannelId:        "@alerts",
    PollInterval:     "5m",
    FetchTimeout:     "10s",
    FetchClientKind:  "RESTY",
    BrowserHeadless:  "false",
    DebugReports:     "0",
    ExitOnCycleError: "true",
  }))
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if cfg.ChannelId != "@alerts" {
    t.Errorf("ChannelId = %q", cfg.ChannelId)
  }
  if cfg.PollInterval != 5*time.Minute {
    t.Errorf("PollInterval = %v", cfg.PollInterval)
  }
  if cfg.FetchTimeout != 10*time.Second {
    t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
  }
  if cfg.FetchClient != FetchClientResty {
    t.Errorf("FetchClient = %q", cfg.FetchClient)
  }
  if cfg.BrowserHeadless || cfg.DebugReports || !cfg.ExitOnCycleError {
    t.Errorf("unexpected flags: headless=%v debug=%v exit=%v",
      cfg.BrowserHeadless, cfg.DebugReports, cfg.ExitOnCycleError)
  }
}

func TestLoadFrom_Invalid(t *testing.T) {
  tests := []struct {
    name string
    env  map[string]string
  }{
    {"bad interval", map[string]string{PollInterval: "soon"}},
    {"zero interval", map[string]string{PollInterval: "0s"}},
    {"bad bool", map[string]string{DebugReports: "maybe"}},
    {"unknown client", map[string]string{FetchClientKind: "curl"}},
    {"bad browser locale", map[string]string{BrowserLocale: "toolonglanguagetag"}},
    {"missing catalog file", map[string]string{CatalogPath: "/nonexistent/catalog.yaml"}},
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      tt.env[BotToken] = "123:abc"
      if _, err := LoadFrom(envMap(tt.env)); err == nil {
        t.Error("expected error")
      }
    })
  }
}

func TestLoadFrom_CatalogFile(t *testing.T) {
  path := writeCatalog(t, `
locales:
  - de-de
products:
  - name: RTX 5090
    query_url: https://api.store.nvidia.com/partner/v1/feinventory?skus=NVGFT590
`)
  cfg, err := LoadFrom(envMap(map[string]string{BotToken: "123:abc", CatalogPath: path}))
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(cfg.Catalog.Products) != 1 || cfg.Catalog.Products[0].Name != "RTX 5090" {
    t.Errorf("Products = %+v", cfg.Catalog.Products)
  }
  if len(cfg.Catalog.Locales) != 1 || cfg.Catalog.Locales[0] != "de-de" {
    t.Errorf("Locales = %v", cfg.Catalog.Locales)
  }
}

func TestValidateCatalog(t *testing.T) {
  tests := []struct {
    name    string
    content string
  }{
    {"no products", `
locales: [sv-se]
products: []
`},
    {"no locales", `
locales: []
products:
  - name: a
    query_url: https://store.test/a
`},
    {"duplicate names", `
locales: [sv-se]
products:
  - name: a
    query_url: https://store.test/a
  - name: a
    query_url: https://store.test/b
`},
    {"relative url", `
locales: [sv-se]
products:
  - name: a
    query_url: /inventory?skus=a
`},
    {"bad locale", `
locales: [toolonglanguagetag]
products:
  - name: a
    query_url: https://store.test/a
`},
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      catalog, err := LoadCatalog(writeCatalog(t, tt.content))
      if err != nil {
        t.Fatalf("LoadCatalog: %v", err)
      }
      if err = ValidateCatalog(*catalog); err == nil {
        t.Error("expected validation error")
      }
    })
  }
}

func TestDefaultCatalogIsValid(t *testing.T) {
  if err := ValidateCatalog(DefaultCatalog()); err != nil {
    t.Fatalf("default catalog invalid: %v", err)
  }
}

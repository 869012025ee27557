package models

import "context"

type SessionParams struct {
  UserAgent string
  Locale    string
}

// Browser opens isolated browsing sessions, one per polling cycle.
type Browser interface {
  NewSession(ctx context.Context, params SessionParams) (Session, error)
  Close() error
}

type Session interface {
  Loader
  Close() error
}

// Loader returns the text content of a fully loaded page.
type Loader interface {
  Load(ctx context.Context, url string) (string, error)
}

type Fetcher interface {
  Fetch(ctx context.Context, queryURL string, locale Locale) (*InventoryRecord, error)
}

type Notifier interface {
  Notify(ctx context.Context, chatId string, text string) error
}

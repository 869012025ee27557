package models

import (
  "errors"
  "fmt"
)

var (
  ErrFetch  = errors.New("fetch failed")
  ErrParse  = errors.New("parse failed")
  ErrNotify = errors.New("notify failed")
  ErrStatus = errors.New("unexpected status")
)

type StatusError struct {
  URL        string
  StatusCode int
  Body       string
}

func (e *StatusError) Error() string {
  return fmt.Sprintf("unexpected status code: %d. url: %s", e.StatusCode, e.URL)
}

func (e *StatusError) Unwrap() error {
  return ErrStatus
}

func IsSuccessStatus(code int) bool {
  return code >= 200 && code < 300
}

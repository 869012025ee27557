package message

import (
  "errors"
  "fmt"

  "github.com/ushakovn/instock/internal/models"
  "github.com/ushakovn/instock/pkg/stringer"
)

const (
  BotStartedText = "Bot started"
  BotStoppedText = "Bot stopped by user"
)

func CycleFailedText(err error) string {
  return fmt.Sprintf("Error in check loop: %s", ErrorText(err))
}

func ShutdownFailedText(err error) string {
  return fmt.Sprintf("Error in main loop: %s", ErrorText(err))
}

// ErrorText renders an error for a chat message. Upstream error pages are
// reduced to their text.
func ErrorText(err error) string {
  if err == nil {
    return ""
  }
  text := err.Error()

  var statusErr *models.StatusError

  if errors.As(err, &statusErr) && !stringer.IsEmptyStr(statusErr.Body) {
    text = fmt.Sprintf("%s\n%s", text, stringer.StripTags(statusErr.Body))
  }

  return stringer.Truncate(text, errorTextLimit)
}

package browser

import (
  "context"
  "fmt"

  "github.com/chromedp/cdproto/emulation"
  "github.com/chromedp/cdproto/network"
  "github.com/chromedp/cdproto/page"
  "github.com/chromedp/chromedp"
  "github.com/ushakovn/instock/internal/models"
  "github.com/ushakovn/instock/pkg/stringer"
)

const statusBodyLimit = 2000

type Session struct {
  config Config
  params models.SessionParams

  ctx    context.Context
  cancel context.CancelFunc
}

// Load opens a new page, navigates to url, waits until the page network is
// idle and returns the rendered document. The page is closed on return.
func (s *Session) Load(ctx context.Context, url string) (string, error) {
  pageCtx, closePage := chromedp.NewContext(s.ctx)
  defer closePage()

  stop := context.AfterFunc(ctx, closePage)
  defer stop()

  pageCtx, cancel := context.WithTimeout(pageCtx, s.config.Timeout)
  defer cancel()

  idle := newIdleWatcher()
  chromedp.ListenTarget(pageCtx, idle.listen)

  if err := chromedp.Run(pageCtx, s.setupActions()...); err != nil {
    return "", fmt.Errorf("chromedp.Run: setup page: %w", err)
  }

  resp, err := chromedp.RunResponse(pageCtx, chromedp.Navigate(url))
  if err != nil {
    return "", fmt.Errorf("chromedp.RunResponse: %w", err)
  }
  if resp == nil {
    return "", fmt.Errorf("navigation returned no response. url: %s", url)
  }

  if status := int(resp.Status); !models.IsSuccessStatus(status) {
    var body string
    _ = chromedp.Run(pageCtx, chromedp.OuterHTML("html", &body, chromedp.ByQuery))

    return "", &models.StatusError{
      URL:        url,
      StatusCode: status,
      Body:       stringer.Truncate(body, statusBodyLimit),
    }
  }

  select {
  case <-idle.done:
  case <-pageCtx.Done():
    return "", fmt.Errorf("wait network idle: %w", pageCtx.Err())
  }

  var content string

  if err = chromedp.Run(pageCtx, chromedp.OuterHTML("html", &content, chromedp.ByQuery)); err != nil {
    return "", fmt.Errorf("chromedp.Run: outer html: %w", err)
  }

  return content, nil
}

func (s *Session) Close() error {
  s.cancel()
  return nil
}

func (s *Session) setupActions() []chromedp.Action {
  actions := []chromedp.Action{
    network.Enable(),
    page.SetLifecycleEventsEnabled(true),
  }

  if s.params.UserAgent != "" {
    override := emulation.SetUserAgentOverride(s.params.UserAgent)

    if s.params.Locale != "" {
      override = override.WithAcceptLanguage(s.params.Locale)
    }
    actions = append(actions, override)
  }

  return actions
}

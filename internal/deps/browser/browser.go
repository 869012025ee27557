package browser

import (
  "context"
  "fmt"
  "time"

  "github.com/chromedp/chromedp"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/instock/internal/models"
)

const (
  defaultTimeout = 45 * time.Second
  windowWidth    = 1920
  windowHeight   = 1080
)

type Config struct {
  Headless bool
  ExecPath string
  Timeout  time.Duration
}

// Browser is a headless Chrome instance shared by all sessions.
type Browser struct {
  config Config

  ctx         context.Context
  cancel      context.CancelFunc
  cancelAlloc context.CancelFunc
}

func New(ctx context.Context, config Config) (*Browser, error) {
  if config.Timeout <= 0 {
    config.Timeout = defaultTimeout
  }

  opts := append(chromedp.DefaultExecAllocatorOptions[:],
    chromedp.Flag("headless", config.Headless),
    chromedp.Flag("disable-blink-features", "AutomationControlled"),
    chromedp.WindowSize(windowWidth, windowHeight),
  )
  if config.ExecPath != "" {
    opts = append(opts, chromedp.ExecPath(config.ExecPath))
  }

  allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)

  browserCtx, cancel := chromedp.NewContext(allocCtx,
    chromedp.WithErrorf(log.Errorf),
  )

  // First run starts the browser process.
  if err := chromedp.Run(browserCtx); err != nil {
    cancel()
    cancelAlloc()
    return nil, fmt.Errorf("chromedp.Run: %w", err)
  }

  log.
    WithField("headless", config.Headless).
    Info("chrome browser started")

  return &Browser{
    config:      config,
    ctx:         browserCtx,
    cancel:      cancel,
    cancelAlloc: cancelAlloc,
  }, nil
}

// NewSession opens an isolated browser context. Pages opened by the session
// share its cookies and user agent; closing the session disposes them all.
func (b *Browser) NewSession(ctx context.Context, params models.SessionParams) (models.Session, error) {
  sessionCtx, cancel := chromedp.NewContext(b.ctx, chromedp.WithNewBrowserContext())

  stop := context.AfterFunc(ctx, cancel)

  if err := chromedp.Run(sessionCtx); err != nil {
    stop()
    cancel()
    return nil, fmt.Errorf("chromedp.Run: %w", err)
  }

  return &Session{
    config: b.config,
    params: params,
    ctx:    sessionCtx,
    cancel: func() {
      stop()
      cancel()
    },
  }, nil
}

func (b *Browser) Close() error {
  defer b.cancelAlloc()

  if err := chromedp.Cancel(b.ctx); err != nil {
    b.cancel()
    return fmt.Errorf("chromedp.Cancel: %w", err)
  }
  return nil
}

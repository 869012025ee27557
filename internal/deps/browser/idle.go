package browser

import (
  "sync"

  "github.com/chromedp/cdproto/cdp"
  "github.com/chromedp/cdproto/network"
  "github.com/chromedp/cdproto/page"
)

const lifecycleNetworkIdle = "networkIdle"

// idleWatcher signals once the document loaded by the navigation reports
// network quiescence. The document is identified by the loader of the first
// document response, so lifecycle events of the initial blank page are
// ignored. Events may arrive in any order.
type idleWatcher struct {
  mu       sync.Mutex
  loaderId cdp.LoaderID
  idle     map[cdp.LoaderID]bool

  once sync.Once
  done chan struct{}
}

func newIdleWatcher() *idleWatcher {
  return &idleWatcher{
    idle: map[cdp.LoaderID]bool{},
    done: make(chan struct{}),
  }
}

func (w *idleWatcher) listen(ev any) {
  switch e := ev.(type) {

  case *network.EventResponseReceived:
    if e.Type != network.ResourceTypeDocument {
      return
    }
    w.mu.Lock()
    if w.loaderId == "" {
      w.loaderId = e.LoaderID
    }
    ready := w.idle[w.loaderId]
    w.mu.Unlock()

    if ready {
      w.signal()
    }

  case *page.EventLifecycleEvent:
    if e.Name != lifecycleNetworkIdle {
      return
    }
    w.mu.Lock()
    w.idle[e.LoaderID] = true
    ready := w.loaderId != "" && w.loaderId == e.LoaderID
    w.mu.Unlock()

    if ready {
      w.signal()
    }
  }
}

func (w *idleWatcher) signal() {
  w.once.Do(func() {
    close(w.done)
  })
}

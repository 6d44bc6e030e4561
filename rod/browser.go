package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before Chrome is restarted.
const DefaultMaxPages = 75

// browser owns the Chrome process and restarts it every maxPages pages,
// since Chrome's memory never returns to its baseline.
type browser struct {
	mu       sync.Mutex
	b        *rod.Browser
	l        *launcher.Launcher
	pages    atomic.Int64
	maxPages int64
	closed   atomic.Bool
}

// get returns the current browser, restarting it first when due.
func (bm *browser) get() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.maxPages > 0 && bm.pages.Load() >= bm.maxPages {
		bm.restart()
	}
	return bm.b
}

func (bm *browser) rendered() {
	bm.pages.Add(1)
}

func (bm *browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.b = b
	bm.l = l
	return nil
}

// restart swaps in a fresh browser, keeping the old one if the launch fails.
// Must be called with mu held.
func (bm *browser) restart() {
	oldB, oldL := bm.b, bm.l
	if err := bm.launch(); err != nil {
		bm.b, bm.l = oldB, oldL
		return
	}
	if oldB != nil {
		_ = oldB.Close()
	}
	if oldL != nil {
		oldL.Kill()
	}
	bm.pages.Store(0)
}

func (bm *browser) close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	var err error
	if bm.b != nil {
		err = bm.b.Close()
		bm.b = nil
	}
	if bm.l != nil {
		bm.l.Kill()
		bm.l = nil
	}
	return err
}

func (bm *browser) pid() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.l == nil {
		return 0
	}
	return bm.l.PID()
}

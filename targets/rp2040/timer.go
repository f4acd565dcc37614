//go:build rp2040 || rp2350

package main

import (
	"sync"
	"time"

	"github.com/inthewhirlwind/retro-pico-multimode-clock-source/core"
)

// tickerTimer runs its callback from a goroutine driven by time.Ticker.
// Cancel is idempotent; a close of the stop channel is observed before
// the next callback fires.
type tickerTimer struct {
	stop chan struct{}
	once sync.Once
}

func (t *tickerTimer) Cancel() {
	t.once.Do(func() { close(t.stop) })
}

type tickerTimerDriver struct{}

func newTimerDriver() tickerTimerDriver { return tickerTimerDriver{} }

func (tickerTimerDriver) StartRepeating(periodMicros uint32, fn func()) (core.RepeatingTimer, error) {
	t := &tickerTimer{stop: make(chan struct{})}
	ticker := time.NewTicker(time.Duration(periodMicros) * time.Microsecond)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				select {
				case <-t.stop:
					return
				default:
				}
				fn()
			}
		}
	}()
	return t, nil
}

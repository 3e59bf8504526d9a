package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

// Locked планировщик периодических и отложенных действий.
// Каждый callback выполняется под переданным Locker, поэтому он упорядочен
// с остальными операциями над тем же состоянием.
// Отмена синхронна: после возврата cancel() callback больше не будет вызван,
// если cancel вызывается под тем же Locker.
type Locked struct {
	mu sync.Locker
}

// NewLocked создает планировщик, сериализующий callback'и через mu
func NewLocked(mu sync.Locker) *Locked {
	return &Locked{mu: mu}
}

// Every вызывает fn каждые interval до отмены
func (s *Locked) Every(interval time.Duration, fn func()) (cancel func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var stopped atomic.Bool

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.mu.Lock()
				if !stopped.Load() {
					fn()
				}
				s.mu.Unlock()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stopped.Store(true)
			ticker.Stop()
			close(done)
		})
	}
}

// After вызывает fn один раз через delay, если действие не отменено
func (s *Locked) After(delay time.Duration, fn func()) (cancel func()) {
	var stopped atomic.Bool

	timer := time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if stopped.Load() {
			return
		}
		stopped.Store(true)
		fn()
	})

	return func() {
		stopped.Store(true)
		timer.Stop()
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
)

// DefaultSweepInterval is how often the janitor looks for expired sessions
// unless the deployment overrides it.
const DefaultSweepInterval = time.Minute

// Janitor periodically sweeps expired sessions out of a [Manager]. It
// implements the workers.Worker interface.
type Janitor struct {
	manager  *Manager
	interval time.Duration
	logger   *logger.Logger
	stop     chan struct{}
}

// NewJanitor constructs a janitor for manager. A non-positive interval
// falls back to [DefaultSweepInterval].
func NewJanitor(manager *Manager, interval time.Duration, logger *logger.Logger) *Janitor {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Janitor{
		manager:  manager,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately.
func (j *Janitor) Run() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if dropped := j.manager.Sweep(); dropped > 0 {
					j.logger.Debug().Int("dropped", dropped).Msg("expired sessions swept")
				}
			case <-j.stop:
				return
			}
		}
	}()
}

// Stop terminates the sweep loop. Safe to call once.
func (j *Janitor) Stop() {
	close(j.stop)
}

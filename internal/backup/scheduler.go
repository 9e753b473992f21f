// SPDX-License-Identifier: MIT
package backup

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Scheduler handles automatic backup scheduling
type Scheduler struct {
	Manager        *BackupManager
	ticker         *time.Ticker
	done           chan bool
	stopChan       chan bool
	BackupInterval time.Duration
	now            func() time.Time
}

// NewScheduler creates a new backup scheduler
func NewScheduler(manager *BackupManager) *Scheduler {
	return &Scheduler{
		Manager:        manager,
		BackupInterval: 24 * time.Hour, // Default: daily
		done:           make(chan bool, 1),
		stopChan:       make(chan bool, 1),
		now:            time.Now,
	}
}

// Start begins the backup scheduler in a goroutine
// Returns a done channel that receives once the scheduler stops
func (s *Scheduler) Start() chan bool {
	go func() {
		s.ticker = time.NewTicker(s.BackupInterval)
		defer s.ticker.Stop()

		// Run initial backup immediately
		if err := s.runBackup(); err != nil {
			log.Error().Err(err).Msg("Initial backup failed")
		}

		for {
			select {
			case <-s.stopChan:
				s.done <- true
				return
			case <-s.ticker.C:
				if err := s.runBackup(); err != nil {
					log.Error().Err(err).Msg("Scheduled backup failed")
				}
			}
		}
	}()

	return s.done
}

// Stop stops the backup scheduler
func (s *Scheduler) Stop() {
	select {
	case s.stopChan <- true:
	default:
	}
}

// runBackup performs a single backup operation
func (s *Scheduler) runBackup() error {
	name, err := s.Manager.CreateBackup(s.now())
	if err != nil {
		return fmt.Errorf("backup creation failed: %w", err)
	}
	log.Info().Str("file", name).Str("dir", s.Manager.BackupPath).Msg("Theme library backed up")
	return nil
}

// SetInterval sets the backup interval
func (s *Scheduler) SetInterval(interval time.Duration) {
	s.BackupInterval = interval
}

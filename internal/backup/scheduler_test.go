// SPDX-License-Identifier: MIT
package backup

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestNewScheduler(t *testing.T) {
	manager := NewBackupManager(setupBackupTestDB(t), t.TempDir())
	scheduler := NewScheduler(manager)
	if scheduler == nil {
		t.Fatal("NewScheduler returned nil")
	}
	if scheduler.Manager != manager {
		t.Fatal("scheduler manager not set correctly")
	}
	if scheduler.BackupInterval != 24*time.Hour {
		t.Errorf("expected daily interval, got %v", scheduler.BackupInterval)
	}
}

func TestSchedulerRunsInitialBackup(t *testing.T) {
	tmpDir := t.TempDir()
	manager := NewBackupManager(setupBackupTestDB(t), tmpDir)
	scheduler := NewScheduler(manager)

	done := scheduler.Start()

	deadline := time.Now().Add(time.Second)
	for {
		names, err := manager.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(names) == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("initial backup was not written")
		}
		time.Sleep(10 * time.Millisecond)
	}

	scheduler.Stop()
	<-done
}

func TestSchedulerStop(t *testing.T) {
	manager := NewBackupManager(setupBackupTestDB(t), t.TempDir())
	scheduler := NewScheduler(manager)

	// Distinct timestamps so every tick writes a new file
	var ticks int64
	base := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	scheduler.now = func() time.Time {
		return base.Add(time.Duration(atomic.AddInt64(&ticks, 1)) * time.Second)
	}
	scheduler.SetInterval(20 * time.Millisecond)

	done := scheduler.Start()
	time.Sleep(100 * time.Millisecond)
	scheduler.Stop()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("scheduler did not stop within timeout")
	}

	if atomic.LoadInt64(&ticks) < 2 {
		t.Errorf("expected several backups, got %d", atomic.LoadInt64(&ticks))
	}
}

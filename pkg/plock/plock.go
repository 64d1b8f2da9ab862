// SPDX-License-Identifier: Apache-2.0

// Package plock provides process-level mutual exclusion using file system
// advisory locks. It guards against two installer runs mutating the same
// project directory concurrently.
package plock

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/joomcode/errorx"

	"github.com/raven-assistant/ravenctl/pkg/sanity"
)

const (
	// DefaultRetryDelay is the polling interval used by TryAcquire.
	DefaultRetryDelay = 200 * time.Millisecond

	lockFileSuffix = ".plock"
)

// Info describes a process lock.
type Info struct {
	PID          int
	Name         string
	WorkDir      string
	LockFilePath string
	ActivatedAt  *time.Time
}

// Lock is the process lock API.
type Lock interface {
	// Acquire takes the lock, failing immediately when it is held elsewhere.
	Acquire() error
	// TryAcquire polls for the lock until the timeout expires.
	TryAcquire(timeout time.Duration) error
	// Release drops the lock.
	Release() error
	// IsAcquired reports whether this instance holds the lock.
	IsAcquired() bool
	// Info returns details about the lock.
	Info() *Info
}

// plock implements Lock on top of OS advisory file locks. Advisory locks are
// released by the kernel when the process dies, so stale lock files from a
// crashed run never block a new one.
type plock struct {
	name        string
	workDir     string
	pid         int
	fileLock    *flock.Flock
	activatedAt *time.Time
}

// NewLock returns an instance of Lock.
//
// lockName should be the unique lock name that is tracked by the process for
// mutual exclusion, usually the program name. The lock file is created as:
// {workDir}/{lockName}.plock
func NewLock(lockName string, workDir string) (Lock, error) {
	lockName, err := sanity.Filename(lockName)
	if err != nil {
		return nil, errorx.IllegalArgument.Wrap(err, "invalid lock name")
	}

	if workDir == "" {
		return nil, errorx.IllegalArgument.New("work dir cannot be empty")
	}

	if err = os.MkdirAll(workDir, 0o755); err != nil {
		return nil, errorx.ExternalError.Wrap(err, "cannot instantiate work dir %q", workDir)
	}

	path := filepath.Join(workDir, lockName+lockFileSuffix)

	return &plock{
		name:     lockName,
		workDir:  workDir,
		pid:      os.Getpid(),
		fileLock: flock.New(path),
	}, nil
}

func (pl *plock) Acquire() error {
	if pl.IsAcquired() {
		return errorx.IllegalState.New("lock %q is already acquired", pl.name)
	}

	locked, err := pl.fileLock.TryLock()
	if err != nil {
		return errorx.ExternalError.Wrap(err, "unexpected error while acquiring lock %q", pl.fileLock.Path())
	}

	if !locked {
		return errorx.IllegalState.New("lock exists for: %s, another instance appears to be running", pl.fileLock.Path())
	}

	now := time.Now()
	pl.activatedAt = &now

	return nil
}

func (pl *plock) TryAcquire(timeout time.Duration) error {
	if timeout < DefaultRetryDelay {
		return errorx.IllegalArgument.New("timeout %q must be bigger than the retry delay", timeout.String())
	}

	deadline := time.Now().Add(timeout)
	for {
		if err := pl.Acquire(); err == nil {
			return nil
		}

		if time.Now().After(deadline) {
			return errorx.TimeoutElapsed.New("failed to acquire lock %q after %s", pl.name, timeout.String())
		}

		time.Sleep(DefaultRetryDelay)
	}
}

func (pl *plock) Release() error {
	if !pl.IsAcquired() {
		return errorx.IllegalState.New("lock %q is not acquired, so cannot be released yet", pl.name)
	}

	if err := pl.fileLock.Unlock(); err != nil {
		return errorx.ExternalError.Wrap(err, "failed to release lock %q", pl.fileLock.Path())
	}

	pl.activatedAt = nil

	return nil
}

func (pl *plock) IsAcquired() bool {
	return pl.activatedAt != nil
}

func (pl *plock) Info() *Info {
	return &Info{
		PID:          pl.pid,
		Name:         pl.name,
		WorkDir:      pl.workDir,
		LockFilePath: pl.fileLock.Path(),
		ActivatedAt:  pl.activatedAt,
	}
}

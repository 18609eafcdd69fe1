package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/misterclayt0n/megin/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrClosed is returned by Save after Close.
var ErrClosed = errors.New("saver closed")

const writeTimeout = 10 * time.Second

// AsyncSaver makes saves fire-and-forget. Only the newest snapshot matters, so
// a snapshot still waiting to be written is replaced by a newer one. Failed
// writes are logged and not retried.
type AsyncSaver struct {
	backend Backend
	log     logrus.FieldLogger

	mu      sync.Mutex
	closed  bool
	pending chan *models.Snapshot
	done    chan struct{}
}

func NewAsyncSaver(backend Backend, log logrus.FieldLogger) *AsyncSaver {
	a := &AsyncSaver{
		backend: backend,
		log:     log,
		pending: make(chan *models.Snapshot, 1),
		done:    make(chan struct{}),
	}
	go a.run()
	return a
}

// Load reads straight from the backend.
func (a *AsyncSaver) Load(ctx context.Context) (*models.Snapshot, error) {
	return a.backend.Load(ctx)
}

// Save queues the snapshot and returns immediately.
func (a *AsyncSaver) Save(_ context.Context, snap *models.Snapshot) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}

	for {
		select {
		case a.pending <- snap:
			return nil
		default:
			// Drop the stale one; the writer may have just taken it.
			select {
			case <-a.pending:
			default:
			}
		}
	}
}

func (a *AsyncSaver) run() {
	defer close(a.done)
	for snap := range a.pending {
		a.write(snap)
	}
}

func (a *AsyncSaver) write(snap *models.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := saveRecovered(ctx, a.backend, snap); err != nil {
		a.log.WithError(err).Error("Failed to persist workout state")
		return
	}
	a.log.Debug("Workout state persisted")
}

// saveRecovered turns a panicking backend into an error. A panic here would
// otherwise take down the process from the writer goroutine.
func saveRecovered(ctx context.Context, backend Backend, snap *models.Snapshot) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panicked: %v", r)
		}
	}()
	return backend.Save(ctx, snap)
}

// Close writes whatever is still queued and stops the writer. It does not
// close the backend.
func (a *AsyncSaver) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.pending)
	}
	a.mu.Unlock()

	<-a.done
}

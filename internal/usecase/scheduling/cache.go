package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/rushdesk/rush-scheduler/internal/dto"
	"github.com/rushdesk/rush-scheduler/internal/httperr"
)

// GridCache is the snapshot cache for the scheduler grid. Get returns
// (nil, nil) on a miss; all methods are best-effort from the caller's view.
type GridCache interface {
	Get(ctx context.Context) (*dto.SchedulerGrid, error)
	Set(ctx context.Context, g *dto.SchedulerGrid) error
	Invalidate(ctx context.Context) error
}

// opTimeout bounds each write operation's time in the persistence layer.
const opTimeout = 5 * time.Second

// asStoreError folds context expiry into the transient bucket; anything else
// passes through untouched.
func asStoreError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return httperr.ErrTransient("persistence_timeout")
	}
	return err
}

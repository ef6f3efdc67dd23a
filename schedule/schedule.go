package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
	"github.com/go-co-op/gocron"

	"phrasebot/phrases"
)

// Rotation is one rotator bound to one element of a surface.
type Rotation struct {
	Rotator  *phrases.Rotator
	Surface  phrases.Surface
	TargetID string
}

// Run performs a single update. Failures are logged and reported, never
// retried; the element keeps whatever text it had.
func (r Rotation) Run(ctx context.Context) error {
	err := r.Rotator.UpdateElement(ctx, r.Surface, r.TargetID)
	switch {
	case err == nil:
		log.Debug("footer updated", "target", r.TargetID)
	case errors.Is(err, phrases.ErrTargetNotFound):
		log.Warn("footer target not found", "target", r.TargetID)
		sentry.CaptureException(err)
	default:
		log.Errorf("footer update failed: %s", err)
		sentry.CaptureException(err)
	}
	return err
}

// Init starts a scheduler that runs rotation immediately and then every
// interval. The caller stops it.
func Init(ctx context.Context, location *time.Location, every time.Duration, rotation Rotation) (*gocron.Scheduler, error) {
	scheduler := gocron.NewScheduler(location)
	scheduler.SingletonModeAll()
	if _, err := scheduler.Every(every).StartImmediately().Do(func() {
		_ = rotation.Run(ctx)
	}); err != nil {
		log.Errorf("Rotation scheduler err: %s", err)
		return nil, err
	}
	scheduler.StartAsync()
	return scheduler, nil
}

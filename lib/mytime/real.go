package mytime

import (
	"context"
	"time"
)

type RealNower struct{}

func (n RealNower) Now() time.Time {
	return time.Now()
}

type RealSleeper struct{}

func (s RealSleeper) Sleep(c context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-c.Done():
		return c.Err()
	case <-timer.C:
		return nil
	}
}

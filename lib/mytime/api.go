package mytime

import (
	"context"
	"time"
)

var (
	ExampleTime time.Time
)

func init() {
	ExampleTime, _ = time.Parse("2006-01-02T15:04:05Z", "2023-02-27T23:58:59Z")
}

//go:generate mockgen -source=api.go -package mytime -destination mytime_mock.go Nower,Sleeper
type Nower interface {
	Now() time.Time
}

// Sleeper is a cancellable delay: it returns early with the context error
// when the context is done before the duration elapses.
type Sleeper interface {
	Sleep(c context.Context, d time.Duration) error
}

package toast

import (
	"context"
	"fmt"

	"github.com/P0RTNOY/IronMind/lib/mylog"
	"github.com/P0RTNOY/IronMind/lib/mystore"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Toast struct {
	Level   Level
	Message string
}

// Queue is the stored shape: the pending toasts of one browser session.
type Queue struct {
	Toasts []Toast
}

// Bus queues one-shot messages per session: pages push, the next rendered
// page drains. Draining empties the queue, a message is shown once.
type Bus interface {
	Push(c context.Context, sessionUID string, toast Toast)
	Drain(c context.Context, sessionUID string) []Toast
}

type bus struct {
	queues mystore.Store[Queue]
	logger mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewBus(queues mystore.Store[Queue]) Bus {
	return &bus{
		queues: queues,
		logger: mylog.New("toast"),
	}
}

// Push never fails the caller: a lost toast is not worth failing a page for.
func (b *bus) Push(c context.Context, sessionUID string, toast Toast) {
	if sessionUID == "" {
		return
	}

	err := b.queues.RunInTransaction(c, func(c context.Context) error {
		queue, _, err := b.queues.Get(c, sessionUID)
		if err != nil {
			return err
		}
		queue.Toasts = append(queue.Toasts, toast)

		return b.queues.Put(c, sessionUID, queue)
	})
	if err != nil {
		b.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error pushing toast: %s", err)
	}
}

func (b *bus) Drain(c context.Context, sessionUID string) []Toast {
	if sessionUID == "" {
		return nil
	}

	var drained []Toast
	err := b.queues.RunInTransaction(c, func(c context.Context) error {
		queue, found, err := b.queues.Get(c, sessionUID)
		if err != nil {
			return err
		}
		if !found || len(queue.Toasts) == 0 {
			return nil
		}
		drained = queue.Toasts

		err = b.queues.Delete(c, sessionUID)
		if err != nil {
			return fmt.Errorf("error emptying toast queue: %s", err)
		}
		return nil
	})
	if err != nil {
		b.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error draining toasts: %s", err)
		return nil
	}

	return drained
}

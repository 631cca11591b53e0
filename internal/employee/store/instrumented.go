package store

import (
	"context"
	"time"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/employeedir/employeedir/backend/go-services/pkg/logger"
	"github.com/employeedir/employeedir/backend/go-services/pkg/metrics"
)

// Instrumented records latency and failures of every call on the wrapped Store.
type Instrumented struct {
	next    Store
	backend string
}

func NewInstrumented(next Store, backend string) *Instrumented {
	return &Instrumented{next: next, backend: backend}
}

func (i *Instrumented) observe(call string, start time.Time, err error) {
	metrics.StoreDuration.WithLabelValues(i.backend, call).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreErrors.WithLabelValues(i.backend, call).Inc()
		logger.Warnf("store %s %s failed: %v", i.backend, call, err)
		return
	}
	logger.Debugf("store %s %s took %s", i.backend, call, time.Since(start))
}

func (i *Instrumented) Load(ctx context.Context) (employee.Document, error) {
	start := time.Now()
	doc, err := i.next.Load(ctx)
	i.observe("load", start, err)
	return doc, err
}

func (i *Instrumented) Save(ctx context.Context, doc employee.Document) error {
	start := time.Now()
	err := i.next.Save(ctx, doc)
	i.observe("save", start, err)
	return err
}

func (i *Instrumented) InitializeIfAbsent(ctx context.Context, seed employee.Document) error {
	start := time.Now()
	err := i.next.InitializeIfAbsent(ctx, seed)
	i.observe("initialize", start, err)
	return err
}

// Lock forwards to the wrapped Store when it is a Locker.
func (i *Instrumented) Lock(ctx context.Context) (func() error, error) {
	l, ok := i.next.(Locker)
	if !ok {
		return func() error { return nil }, nil
	}
	start := time.Now()
	unlock, err := l.Lock(ctx)
	i.observe("lock", start, err)
	return unlock, err
}

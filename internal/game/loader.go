package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrNotReady is returned by Future.Result while the load is in flight.
var ErrNotReady = errors.New("asset not ready")

// LoadState is the lifecycle of an asynchronous load.
type LoadState int

const (
	LoadPending LoadState = iota
	LoadReady
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadPending:
		return "pending"
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Future is the frame-side handle of a load. It only changes state inside
// Loader.Poll, so readers on the update goroutine never race the loader.
type Future[T any] struct {
	name    string
	state   LoadState
	value   T
	err     error
	onReady []func(T)
	onFail  []func(error)
}

func (f *Future[T]) Name() string     { return f.name }
func (f *Future[T]) State() LoadState { return f.state }

// Resolved reports whether the load finished, successfully or not.
func (f *Future[T]) Resolved() bool { return f.state != LoadPending }

// Value returns the loaded value and true once Ready.
func (f *Future[T]) Value() (T, bool) {
	if f.state != LoadReady {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Result returns the value, ErrNotReady while pending, or the load error.
func (f *Future[T]) Result() (T, error) {
	switch f.state {
	case LoadReady:
		return f.value, nil
	case LoadFailed:
		var zero T
		return zero, f.err
	default:
		var zero T
		return zero, ErrNotReady
	}
}

// OnReady registers fn to run on the update goroutine when the load
// succeeds. It runs immediately if the future is already Ready.
func (f *Future[T]) OnReady(fn func(T)) *Future[T] {
	if f.state == LoadReady {
		fn(f.value)
		return f
	}
	f.onReady = append(f.onReady, fn)
	return f
}

// OnFail registers fn for a failed load. It runs immediately if the future
// already failed.
func (f *Future[T]) OnFail(fn func(error)) *Future[T] {
	if f.state == LoadFailed {
		fn(f.err)
		return f
	}
	f.onFail = append(f.onFail, fn)
	return f
}

func (f *Future[T]) settle(v T, err error) {
	if f.state != LoadPending {
		return
	}
	if err != nil {
		f.state = LoadFailed
		f.err = err
		for _, fn := range f.onFail {
			fn(err)
		}
	} else {
		f.state = LoadReady
		f.value = v
		for _, fn := range f.onReady {
			fn(v)
		}
	}
	f.onReady, f.onFail = nil, nil
}

// ResolvedFuture builds a future that is already Ready.
func ResolvedFuture[T any](name string, v T) *Future[T] {
	return &Future[T]{name: name, state: LoadReady, value: v}
}

// FailedFuture builds a future that has already failed.
func FailedFuture[T any](name string, err error) *Future[T] {
	return &Future[T]{name: name, state: LoadFailed, err: err}
}

// LoadFunc performs one blocking load.
type LoadFunc[T any] func(ctx context.Context, name string) (T, error)

// Loader runs loads on background goroutines and hands the results back to
// the update goroutine through Poll.
type Loader struct {
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan func()
	mu      sync.Mutex
	pending int
	wg      sync.WaitGroup
	log     *slog.Logger
}

func NewLoader(log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan func(), 64),
		log:    log,
	}
}

// Request starts loading name with fn and returns its future.
func Request[T any](l *Loader, name string, fn LoadFunc[T]) *Future[T] {
	f := &Future[T]{name: name}
	l.mu.Lock()
	l.pending++
	l.mu.Unlock()
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		v, err := fn(l.ctx, name)
		settle := func() {
			if err != nil {
				l.log.Warn("asset load failed", "asset", name, "error", err)
			}
			f.settle(v, err)
		}
		select {
		case l.done <- settle:
		case <-l.ctx.Done():
		}
	}()
	return f
}

// Poll applies every completed load without blocking and returns how many
// futures settled.
func (l *Loader) Poll() int {
	n := 0
	for {
		select {
		case settle := <-l.done:
			settle()
			n++
		default:
			l.mu.Lock()
			l.pending -= n
			l.mu.Unlock()
			return n
		}
	}
}

// Pending is the number of loads not yet applied by Poll.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Drain blocks until every requested load has settled. Headless runs use it
// in place of waiting frames.
func (l *Loader) Drain(ctx context.Context) error {
	for l.Pending() > 0 {
		select {
		case settle := <-l.done:
			settle()
			l.mu.Lock()
			l.pending--
			l.mu.Unlock()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Close cancels outstanding loads and waits for their goroutines.
func (l *Loader) Close() {
	l.cancel()
	l.wg.Wait()
}

package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/you-humble/mongo-probe/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// Closer runs registered shutdown functions, last registered first.
type Closer struct {
	mu     sync.Mutex
	funcs  []namedFunc
	logger Logger
}

var globalCloser = New(&logger.NoopLogger{})

func New(l Logger) *Closer {
	return &Closer{logger: l}
}

func SetLogger(l Logger) { globalCloser.SetLogger(l) }
func Add(fn func(context.Context) error) { globalCloser.Add(fn) }
func AddNamed(name string, fn func(context.Context) error) { globalCloser.AddNamed(name, fn) }
func CloseAll(ctx context.Context) error { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) Add(fn func(context.Context) error) {
	c.AddNamed("", fn)
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll drains the registry, so a function never runs twice.
func (c *Closer) CloseAll(ctx context.Context) error {
	c.mu.Lock()
	funcs := c.funcs
	c.funcs = nil
	log := c.logger
	c.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		f := funcs[i]
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("closer: %w", err))
			break
		}

		log.Info(ctx, "🧹 closing", logger.String("name", f.name))
		if err := f.fn(ctx); err != nil {
			log.Error(ctx, "failed to close",
				logger.String("name", f.name),
				logger.ErrorF(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		log.Info(ctx, "✅ closed", logger.String("name", f.name))
	}

	return errors.Join(errs...)
}

package host

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/wnxd/mipsrecomp/rdram"
	"github.com/wnxd/mipsrecomp/recomp"
)

var (
	ErrDuplicate = errors.New("host function already registered")
	ErrNotFound  = errors.New("host function not found")
)

// Func is a host implementation of a guest function. It pulls its arguments
// out of ctx with the abi package and leaves its result there the same way.
type Func func(ctx *recomp.Context, mem rdram.Memory)

type entry struct {
	name string
	addr uint64
	fn   Func
}

// Registry maps guest call targets to host functions. One registry is shared
// by every guest thread; each call runs against the caller's own context.
type Registry struct {
	logger logrus.FieldLogger
	mu     sync.RWMutex
	byAddr map[uint64]*entry
	byName map[string]*entry
}

type Option func(*Registry)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger: logrus.StandardLogger(),
		byAddr: make(map[uint64]*entry),
		byName: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds name and its guest entry address to fn.
func (r *Registry) Register(name string, addr uint64, fn Func) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	if e, ok := r.byAddr[addr]; ok {
		return fmt.Errorf("%w: %016X is %s", ErrDuplicate, addr, e.name)
	}
	e := &entry{name, addr, fn}
	r.byName[name] = e
	r.byAddr[addr] = e
	r.logger.WithFields(logrus.Fields{
		"name": name,
		"addr": fmt.Sprintf("%016X", addr),
	}).Debug("host function registered")
	return nil
}

func (r *Registry) Lookup(addr uint64) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.byAddr[addr]; ok {
		return e.fn, true
	}
	return nil, false
}

func (r *Registry) LookupName(name string) (Func, uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.byName[name]; ok {
		return e.fn, e.addr, true
	}
	return nil, 0, false
}

// Call runs the host function bound to addr on ctx.
func (r *Registry) Call(addr uint64, ctx *recomp.Context, mem rdram.Memory) error {
	fn, ok := r.Lookup(addr)
	if !ok {
		r.logger.WithFields(logrus.Fields{
			"addr": fmt.Sprintf("%016X", addr),
			"ra":   fmt.Sprintf("%016X", ctx.RA()),
		}).Warn("call to unregistered host function")
		return fmt.Errorf("%w: %016X", ErrNotFound, addr)
	}
	fn(ctx, mem)
	return nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Package registry memoizes coset lists by group.
//
// Modular symbols computations ask for the cosets of the same handful of
// groups over and over. A Registry keeps the most recently used lists in
// an LRU cache keyed by the group's canonical key, and collapses
// concurrent requests for a list that is still being built into a single
// construction. Returned lists are shared and must be treated as
// read-only, which the cosetlist API already requires.
package registry

import (
	"fmt"

	"github.com/bluele/gcache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/f3rmion/modsym/cosetlist"
	"github.com/f3rmion/modsym/gammah"
)

// DefaultSize is the cache capacity used when New is given a size below 1.
const DefaultSize = 128

// Registry is a concurrency-safe cache of coset lists.
type Registry struct {
	cache    gcache.Cache
	flight   singleflight.Group
	logger   *zap.Logger
	listOpts []cosetlist.Option
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry's logger. It is also passed on to every
// list the registry builds.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = l
		r.listOpts = append(r.listOpts, cosetlist.WithLogger(l))
	}
}

// WithListOptions sets extra options for building lists.
func WithListOptions(opts ...cosetlist.Option) Option {
	return func(r *Registry) {
		r.listOpts = append(r.listOpts, opts...)
	}
}

// New returns a Registry holding at most size lists.
func New(size int, opts ...Option) *Registry {
	if size < 1 {
		size = DefaultSize
	}
	r := &Registry{
		cache:  gcache.New(size).LRU().Build(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the coset list of g, building it on a miss. Equal groups
// share a list. A nil g yields cosetlist.ErrNilGroup.
func (r *Registry) Lookup(g *gammah.Group) (*cosetlist.CosetList, error) {
	if g == nil {
		return nil, cosetlist.ErrNilGroup
	}
	key := g.Key()
	if v, err := r.cache.Get(key); err == nil {
		return v.(*cosetlist.CosetList), nil
	}

	v, err, shared := r.flight.Do(key, func() (interface{}, error) {
		// a flight for key may have finished since the miss above
		if v, err := r.cache.Get(key); err == nil {
			return v, nil
		}
		l, err := cosetlist.New(g, r.listOpts...)
		if err != nil {
			return nil, err
		}
		if err := r.cache.Set(key, l); err != nil {
			return nil, fmt.Errorf("registry: cache %s: %w", key, err)
		}
		r.logger.Debug("cached coset list", zap.String("key", key), zap.Int("len", l.Len()))
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		r.logger.Debug("shared coset list build", zap.String("key", key))
	}
	return v.(*cosetlist.CosetList), nil
}

// Get returns the coset list of Gamma_H(level) with H generated by gens.
func (r *Registry) Get(level int, gens ...int) (*cosetlist.CosetList, error) {
	g, err := gammah.New(level, gens...)
	if err != nil {
		return nil, err
	}
	return r.Lookup(g)
}

// HitCount returns the number of cache hits so far.
func (r *Registry) HitCount() uint64 {
	return r.cache.HitCount()
}

// MissCount returns the number of cache misses so far.
func (r *Registry) MissCount() uint64 {
	return r.cache.MissCount()
}

// Purge drops every cached list.
func (r *Registry) Purge() {
	r.cache.Purge()
}

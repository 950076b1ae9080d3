package script

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"strconv"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/synbuild/log"
	"github.com/ardnew/synbuild/pkg"
)

// DefaultCacheSize is the number of compiled programs kept by [Compile].
const DefaultCacheSize = 64

// Program is a compiled script.
type Program struct {
	Source string

	hash    uint64
	program *vm.Program
}

// Hash returns the xxh3 hash of the program source.
func (p *Program) Hash() uint64 { return p.hash }

type options struct {
	logger log.Logger
}

// Option configures [Compile], [Load], [Run] and [Eval].
type Option func(*options)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func makeOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// cache holds compiled programs in insertion order, keyed by source hash.
// The oldest entry is evicted once it exceeds cacheSize.
//
//nolint:gochecknoglobals
var (
	cacheMu   sync.Mutex
	cache     = linkedhashmap.New()
	cacheSize = DefaultCacheSize
)

// SetCacheSize bounds the compiled-program cache to n entries, evicting the
// oldest as needed. A size below one disables caching.
func SetCacheSize(n int) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	cacheSize = n
	evict()
}

// ClearCache removes all compiled programs from the cache.
func ClearCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	cache.Clear()
}

// evict must be called with cacheMu held.
func evict() {
	for cache.Size() > max(cacheSize, 0) {
		it := cache.Iterator()
		if !it.First() {
			return
		}

		cache.Remove(it.Key())
	}
}

// Compile compiles src against [Env]. Programs are cached by the hash of
// their source, so compiling the same text twice returns the same *Program.
func Compile(ctx context.Context, src string, opts ...Option) (*Program, error) {
	o := makeOptions(opts...)
	hash := xxh3.HashString(src)

	cacheMu.Lock()
	cached, hit := cache.Get(hash)
	cacheMu.Unlock()

	o.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit),
	)

	if p, ok := cached.(*Program); hit && ok {
		return p, nil
	}

	program, err := expr.Compile(src, expr.Env(Env()))
	if err != nil {
		return nil, pkg.ErrScriptCompile.Wrap(err).
			With(slog.String("source", src))
	}

	p := &Program{Source: src, hash: hash, program: program}

	cacheMu.Lock()
	cache.Put(hash, p)
	evict()
	cacheMu.Unlock()

	o.logger.TraceContext(ctx, "script compiled", slog.Int("source_bytes", len(src)))

	return p, nil
}

// Load reads a script from r and compiles it.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*Program, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	makeOptions(opts...).logger.TraceContext(
		ctx,
		"read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	return Compile(ctx, string(data), opts...)
}

// Run evaluates p and returns the value of its final expression, usually a
// syntax node.
func Run(ctx context.Context, p *Program, opts ...Option) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, pkg.ErrScriptRun.Wrap(err)
	}

	out, err := vm.Run(p.program, Env())
	if err != nil {
		return nil, pkg.ErrScriptRun.Wrap(err).
			With(slog.String("source", p.Source))
	}

	makeOptions(opts...).logger.TraceContext(
		ctx,
		"script evaluated",
		slog.String("source_hash", strconv.FormatUint(p.hash, 16)),
		slog.String("result", resultTypeName(out)),
	)

	return out, nil
}

// Eval compiles and runs src.
func Eval(ctx context.Context, src string, opts ...Option) (any, error) {
	p, err := Compile(ctx, src, opts...)
	if err != nil {
		return nil, err
	}

	return Run(ctx, p, opts...)
}

func resultTypeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}

package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/synbuild/script"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type searchPathKey struct{}

// WithSearchPath returns a new context.Context carrying the script search
// path used to resolve script names.
func WithSearchPath(ctx context.Context, searchPath string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, searchPath)
}

// SearchPathFrom returns the script search path stored by [WithSearchPath].
func SearchPathFrom(ctx context.Context) string {
	s, _ := ctx.Value(searchPathKey{}).(string)

	return s
}

// source is a named script input.
type source struct {
	name string
	io.ReadCloser
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSources resolves each name along searchPath and opens it.
//
// Names that refer to the same file, whether through symlinks or
// relative and absolute paths, are opened once. All occurrences of "-" are
// replaced with a single stdin source placed last.
func openSources(names []string, searchPath string) ([]source, error) {
	srcs := make([]source, 0, len(names))
	seen := make(map[fileKey]struct{})
	hasStdin := false

	for _, name := range names {
		if name == stdinSource {
			hasStdin = true

			continue
		}

		path, err := script.Resolve(name, searchPath)
		if err != nil {
			closeSources(srcs)

			return nil, err
		}

		src, ok, err := openUniqueFile(path, seen)
		if err != nil {
			closeSources(srcs)

			return nil, err
		}

		if ok {
			srcs = append(srcs, src)
		}
	}

	if hasStdin {
		srcs = append(srcs, source{name: stdinSource, ReadCloser: io.NopCloser(os.Stdin)})
	}

	return srcs, nil
}

func closeSources(srcs []source) {
	for _, src := range srcs {
		_ = src.Close()
	}
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
// A duplicate is reported with ok false and a nil error.
func openUniqueFile(
	path string,
	seen map[fileKey]struct{},
) (src source, ok bool, err error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return src, false, err
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return src, false, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return src, false, err
	}

	if key, ok := makeFileKey(info); ok {
		if _, exists := seen[key]; exists {
			return src, false, nil
		}

		seen[key] = struct{}{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return src, false, err
	}

	return source{name: path, ReadCloser: file}, true, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}

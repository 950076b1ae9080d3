package script

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/mung"

	"github.com/ardnew/synbuild/pkg"
)

// PathEnv names the environment variable holding additional script
// directories, separated by [os.PathListSeparator].
const PathEnv = "SYNBUILD_PATH"

// SearchPath returns the script search path: dirs followed by the entries of
// [PathEnv]. Entries that are not existing directories are dropped.
func SearchPath(dirs ...string) string {
	return mung.Make(
		mung.WithSubjectItems(os.Getenv(PathEnv)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
		mung.WithFilter(isDir),
	).String()
}

// Resolve returns the path of the script name. A name that exists relative to
// the working directory, or is absolute, is returned unchanged. Otherwise each
// directory of searchPath is tried in order, with and without the ".expr"
// extension.
func Resolve(name, searchPath string) (string, error) {
	if isFile(name) || filepath.IsAbs(name) {
		return name, nil
	}

	for _, dir := range filepath.SplitList(searchPath) {
		for _, cand := range []string{name, name + Ext} {
			if path := filepath.Join(dir, cand); isFile(path) {
				return path, nil
			}
		}
	}

	return "", pkg.ErrReadInput.Wrap(os.ErrNotExist).
		With(slog.String("script", name), slog.String("path", searchPath))
}

// Ext is the conventional script file extension.
const Ext = ".expr"

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

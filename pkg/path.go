package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Environment variables that override the directories returned by
// [ConfigDir] and [CacheDir].
const (
	ConfigDirEnv = "SYNBUILD_CONFIG_DIR"
	CacheDirEnv  = "SYNBUILD_CACHE_DIR"
)

// Prefix names the per-user configuration and cache directories.
//
// It is the base name of the running executable without extension or leading
// dots. Debugger builds (__debug_bin*) and unnamed executables use [Name].
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(func() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	return prefixOf(exe)
})

func prefixOf(exe string) string {
	base := filepath.Base(exe)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimLeft(base, ".")

	if base == "" || strings.HasPrefix(base, "__debug_bin") {
		return Name
	}

	return base
}

// ConfigDir returns the directory holding config.yaml, config.json and the
// scripts directory.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return userDir(ConfigDirEnv, os.UserConfigDir, ".config")
})

// CacheDir returns the directory for transient files such as REPL history
// and profiles.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return userDir(CacheDirEnv, os.UserCacheDir, ".cache")
})

// userDir resolves, in order: the override variable env, the platform
// directory from base, a hidden directory under $HOME, and finally the
// working directory.
func userDir(env string, base func() (string, error), hidden string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}

	if dir, err := base(); err == nil {
		return filepath.Join(dir, Prefix())
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, hidden, Prefix())
	}

	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, Prefix())
	}

	return Prefix()
}

// Package cli contains the command line interface for synbuild.
//
// # Usage
//
//	synbuild [flags] <command> [args]
//
// With no command synbuild starts the interactive shell (repl). The other
// commands evaluate scripts non-interactively:
//
//	synbuild example                    # print the built-in enum example
//	synbuild eval -e 'item_enum("e")'   # evaluate script text
//	synbuild eval build.expr -          # evaluate a file, then stdin
//	synbuild dump -o json shapes        # print the tree of shapes.expr
//	synbuild init                       # write the configuration file
//
// # Scripts
//
// Script names are resolved against the directories given with -I, then
// those in $SYNBUILD_PATH, then the scripts directory under the
// configuration directory. The .expr extension may be omitted.
//
// # Configuration
//
// Flag defaults are read from config.yaml in the configuration directory
// (~/.config/synbuild on Linux). Nested keys are joined with "-", so
//
//	log:
//	  level: debug
//
// sets --log-level. A config.json with flat flag names is also honored.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o synbuild .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/synbuild/pprof)
package cli

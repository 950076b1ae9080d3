// Package profile wraps [github.com/pkg/profile] for optional runtime
// profiling of synbuild.
//
// Profiling is compiled in only with the pprof build tag:
//
//	go build -tags pprof -o synbuild .
//	synbuild --pprof-mode=cpu eval -e 'item_enum("e")'
//
// Without the tag [Start] returns a no-op [Profiler] and [Modes] is empty.
// Profiles are written to the given directory, named after the mode
// (cpu.pprof, mem.pprof and so on), and can be inspected with
//
//	go tool pprof synbuild ~/.cache/synbuild/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

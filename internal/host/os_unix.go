//go:build linux || darwin

package host

import (
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

var (
	forkOnce sync.Once
	forkFn   func() int32
)

// resolveFork looks the process-creation primitive up by symbol name instead
// of going through the static libc surface, so interposing the exported
// symbol does not hide it. Any resolution failure leaves forkFn nil and Fork
// reports duplication as unavailable.
func resolveFork() {
	lib := "libc.so.6"
	if runtime.GOOS == "darwin" {
		lib = "/usr/lib/libSystem.B.dylib"
	}
	handle, err := purego.Dlopen(lib, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return
	}
	addr, err := purego.Dlsym(handle, "fork")
	if err != nil || addr == 0 {
		return
	}
	purego.RegisterFunc(&forkFn, addr)
}

// Fork duplicates the current process. Inside an intact sandbox the syscall
// is denied and -1 comes back. A created child exits immediately and never
// returns from this call; the parent receives the child pid.
func (OS) Fork() int {
	forkOnce.Do(resolveFork)
	if forkFn == nil {
		return -1
	}
	pid := forkFn()
	if pid == 0 {
		unix.Exit(0)
	}
	return int(pid)
}

func (OS) Kill(pid int) {
	// Fire and forget: a child we cannot reap is not a detector error.
	_ = unix.Kill(pid, unix.SIGKILL)
}

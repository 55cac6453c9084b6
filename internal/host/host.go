// Package host is the seam between the probes and the operating system. The
// engine only talks to the Host interface; the real binding lives in OS and
// tests substitute Fake without touching process-wide state.
package host

// Host exposes the slices of OS and runtime state the probes query. Every
// method is a bounded, synchronous query; methods that can fault report it
// through their return value so callers can apply the fail-open policy.
type Host interface {
	// SchemeHandlerRegistered reports whether an external handler for the
	// given URL scheme can be invoked.
	SchemeHandlerRegistered(scheme string) bool

	// FileExists reports whether path exists.
	FileExists(path string) bool

	// CanOpenFile reports whether a handle on path can be opened for read.
	CanOpenFile(path string) bool

	// IsReadable reports whether path is readable by the current process.
	IsReadable(path string) bool

	// WriteFile creates path with the given contents.
	WriteFile(path string, data []byte) error

	// RemoveFile deletes path.
	RemoveFile(path string) error

	// Fork duplicates the current process via the OS primitive resolved by
	// symbol name. Returns the child pid in the parent, or -1 when process
	// duplication is unavailable.
	Fork() int

	// Kill terminates pid, best effort. Delivery failures are ignored.
	Kill(pid int)

	// ReadSymlink resolves path as a symbolic link. Returns the empty string
	// when path is not a link or resolution fails.
	ReadSymlink(path string) string

	// LoadedImages lists the pathnames of every dynamically loaded image in
	// the current process. Nil when enumeration is unavailable.
	LoadedImages() []string

	// RuntimeClassExposes reports whether the live runtime type registry
	// contains the named type and that type exposes the named member.
	RuntimeClassExposes(class, member string) bool

	// LookupEnv reads one process environment variable; ok is true when the
	// variable is present, even with an empty value.
	LookupEnv(name string) (value string, ok bool)

	// ProcessNames snapshots the names of all running processes. An error
	// means the process table could not be obtained at all.
	ProcessNames() ([]string, error)
}

package host

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// OS is the real Host binding. The portable queries live here; the
// platform-specific ones (fork, loaded images, runtime registry, scheme
// handlers) are in the per-platform files.
type OS struct{}

var _ Host = OS{}

func (OS) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OS) CanOpenFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// IsReadable mirrors an access(2)-style readability test: the path is
// readable when a read handle can be obtained.
func (OS) IsReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func (OS) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (OS) RemoveFile(path string) error {
	return os.Remove(path)
}

func (OS) ReadSymlink(path string) string {
	target, err := os.Readlink(path)
	if err != nil {
		return ""
	}
	return target
}

func (OS) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// ProcessNames takes one snapshot of the process table. Per-process name
// lookups that fail (the process exited mid-walk) are skipped; only a failure
// to list the table at all surfaces as an error.
func (OS) ProcessNames() ([]string, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

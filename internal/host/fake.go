package host

import (
	"errors"
	"path/filepath"
)

var errPermission = errors.New("operation not permitted")

// Fake is a scripted Host for tests. Every query answers from the maps below;
// an unset entry means "nothing found". Construct with NewFake so the fork
// result starts at -1 (duplication unavailable) rather than 0, which would
// read as a successful fork.
type Fake struct {
	SchemeHandlers map[string]bool
	Files          map[string]bool
	OpenableFiles  map[string]bool
	ReadablePaths  map[string]bool

	// WritableDirs is keyed by the cleaned directory path; a true entry makes
	// WriteFile and RemoveFile succeed for files created inside it.
	WritableDirs map[string]bool
	Written      []string
	Removed      []string

	ForkResult int
	Killed     []int

	Symlinks     map[string]string
	Images       []string
	RuntimeTypes map[string][]string
	Env          map[string]string

	Processes  []string
	ProcessErr error
}

var _ Host = (*Fake)(nil)

func NewFake() *Fake {
	return &Fake{ForkResult: -1}
}

func (f *Fake) SchemeHandlerRegistered(scheme string) bool {
	return f.SchemeHandlers[scheme]
}

func (f *Fake) FileExists(path string) bool {
	return f.Files[path]
}

func (f *Fake) CanOpenFile(path string) bool {
	return f.OpenableFiles[path]
}

func (f *Fake) IsReadable(path string) bool {
	return f.ReadablePaths[path]
}

func (f *Fake) WriteFile(path string, data []byte) error {
	if !f.WritableDirs[filepath.Dir(path)] {
		return errPermission
	}
	f.Written = append(f.Written, path)
	return nil
}

func (f *Fake) RemoveFile(path string) error {
	if !f.WritableDirs[filepath.Dir(path)] {
		return errPermission
	}
	f.Removed = append(f.Removed, path)
	return nil
}

func (f *Fake) Fork() int {
	return f.ForkResult
}

func (f *Fake) Kill(pid int) {
	f.Killed = append(f.Killed, pid)
}

func (f *Fake) ReadSymlink(path string) string {
	return f.Symlinks[path]
}

func (f *Fake) LoadedImages() []string {
	return f.Images
}

func (f *Fake) RuntimeClassExposes(class, member string) bool {
	for _, m := range f.RuntimeTypes[class] {
		if m == member {
			return true
		}
	}
	return false
}

func (f *Fake) LookupEnv(name string) (string, bool) {
	value, ok := f.Env[name]
	return value, ok
}

func (f *Fake) ProcessNames() ([]string, error) {
	if f.ProcessErr != nil {
		return nil, f.ProcessErr
	}
	return f.Processes, nil
}

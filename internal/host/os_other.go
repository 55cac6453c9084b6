//go:build !linux && !darwin

package host

// Stubs for platforms without a supported binding. Every query reports
// nothing found, which the probes resolve to a pass.

func (OS) SchemeHandlerRegistered(scheme string) bool { return false }

func (OS) Fork() int { return -1 }

func (OS) Kill(pid int) {}

func (OS) LoadedImages() []string { return nil }

func (OS) RuntimeClassExposes(class, member string) bool { return false }

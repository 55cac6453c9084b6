package host

import (
	"bufio"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// schemeQueryTimeout bounds the external handler lookup; the desktop MIME
// database query shells out and must not stall a scan.
const schemeQueryTimeout = 2 * time.Second

// SchemeHandlerRegistered asks the desktop MIME database whether a default
// handler exists for the scheme. Query failures fail open.
func (OS) SchemeHandlerRegistered(scheme string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), schemeQueryTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "xdg-mime", "query", "default", "x-scheme-handler/"+scheme).Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}

// LoadedImages walks /proc/self/maps and returns each distinct mapped file.
func (OS) LoadedImages() []string {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return nil
	}
	defer f.Close()

	seen := map[string]bool{}
	var images []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 6 {
			continue
		}
		path := fields[5]
		if !strings.HasPrefix(path, "/") || seen[path] {
			continue
		}
		seen[path] = true
		images = append(images, path)
	}
	return images
}

// RuntimeClassExposes always reports absent: there is no Objective-C runtime
// to interrogate on this platform.
func (OS) RuntimeClassExposes(class, member string) bool {
	return false
}

package host

import (
	"sync"

	"github.com/ebitengine/purego"
)

var (
	darwinOnce sync.Once

	dyldImageCount func() uint32
	dyldImageName  func(uint32) string

	objcGetClass           func(string) uintptr
	objcSelRegisterName    func(string) uintptr
	objcRespondsToSelector func(uintptr, uintptr) bool
)

func resolveDarwin() {
	if sys, err := purego.Dlopen("/usr/lib/libSystem.B.dylib", purego.RTLD_NOW|purego.RTLD_GLOBAL); err == nil {
		if addr, err := purego.Dlsym(sys, "_dyld_image_count"); err == nil && addr != 0 {
			purego.RegisterFunc(&dyldImageCount, addr)
		}
		if addr, err := purego.Dlsym(sys, "_dyld_get_image_name"); err == nil && addr != 0 {
			purego.RegisterFunc(&dyldImageName, addr)
		}
	}
	if objc, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_NOW|purego.RTLD_GLOBAL); err == nil {
		if addr, err := purego.Dlsym(objc, "objc_getClass"); err == nil && addr != 0 {
			purego.RegisterFunc(&objcGetClass, addr)
		}
		if addr, err := purego.Dlsym(objc, "sel_registerName"); err == nil && addr != 0 {
			purego.RegisterFunc(&objcSelRegisterName, addr)
		}
		if addr, err := purego.Dlsym(objc, "class_respondsToSelector"); err == nil && addr != 0 {
			purego.RegisterFunc(&objcRespondsToSelector, addr)
		}
	}
}

// LoadedImages walks the dyld image list of the current process.
func (OS) LoadedImages() []string {
	darwinOnce.Do(resolveDarwin)
	if dyldImageCount == nil || dyldImageName == nil {
		return nil
	}
	count := dyldImageCount()
	images := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		if name := dyldImageName(i); name != "" {
			images = append(images, name)
		}
	}
	return images
}

// RuntimeClassExposes asks the Objective-C runtime whether the named class is
// registered and responds to the named selector.
func (OS) RuntimeClassExposes(class, member string) bool {
	darwinOnce.Do(resolveDarwin)
	if objcGetClass == nil || objcSelRegisterName == nil || objcRespondsToSelector == nil {
		return false
	}
	cls := objcGetClass(class)
	if cls == 0 {
		return false
	}
	sel := objcSelRegisterName(member)
	if sel == 0 {
		return false
	}
	return objcRespondsToSelector(cls, sel)
}

// SchemeHandlerRegistered fails open here: resolving a default handler needs
// LaunchServices through a CoreFoundation bridge, which this binding does not
// carry.
func (OS) SchemeHandlerRegistered(scheme string) bool {
	return false
}

// Package catalog holds the static signature data the probes match live OS
// state against. It contains reference data only — no validation logic — so
// each group can be extended without touching probe code.
package catalog

// Catalog groups the known tamper-indicator signatures by the probe that
// consumes them. Values are treated as immutable once constructed; tests
// substitute alternate catalogs instead of mutating the default.
type Catalog struct {
	// SuspiciousFiles are artifacts dropped by classic modification
	// frameworks: package managers, injection libraries, bootstrap markers.
	SuspiciousFiles []string

	// RestrictedReadPaths is the narrow subset of paths that must never be
	// readable from inside an intact sandbox.
	RestrictedReadPaths []string

	// ProtectedDirectories must reject file creation on an unmodified system.
	ProtectedDirectories []string

	// SymlinkPaths resolve to nothing on an unmodified system but point at a
	// relocated target once a bootstrap has moved them.
	SymlinkPaths []string

	// InjectedLibraries are name fragments of images loaded by injection
	// frameworks, matched case-insensitively against every loaded image path.
	InjectedLibraries []string

	// EnvironmentVariables are dynamic-loader injection hooks whose mere
	// presence indicates interposition.
	EnvironmentVariables []string

	// HandlerSchemes are external-handler scheme prefixes registered by
	// tamper-management apps.
	HandlerSchemes []string

	// PathSignatures covers newer (rootless) modification frameworks. Kept
	// disjoint from SuspiciousFiles so failures attribute to a distinct kind.
	PathSignatures []string

	// DaemonNames are process-name fragments of known instrumentation and
	// injection daemons, matched case-sensitively by substring.
	DaemonNames []string

	// RuntimeClass/RuntimeMember identify the anti-detection tooling type
	// looked up in the live runtime type registry.
	RuntimeClass  string
	RuntimeMember string
}

// Default returns the built-in signature catalog.
func Default() Catalog {
	return Catalog{
		SuspiciousFiles: []string{
			"/Applications/Cydia.app",
			"/Applications/Sileo.app",
			"/Applications/Zebra.app",
			"/Applications/FakeCarrier.app",
			"/Applications/Icy.app",
			"/Applications/blackra1n.app",
			"/Library/MobileSubstrate/MobileSubstrate.dylib",
			"/Library/MobileSubstrate/CydiaSubstrate.dylib",
			"/Library/MobileSubstrate/DynamicLibraries/LiveClock.plist",
			"/Library/MobileSubstrate/DynamicLibraries/Veency.plist",
			"/usr/libexec/cydia/firmware.sh",
			"/usr/libexec/sftp-server",
			"/usr/libexec/ssh-keysign",
			"/usr/sbin/sshd",
			"/usr/bin/sshd",
			"/usr/sbin/frida-server",
			"/usr/bin/cycript",
			"/usr/local/bin/cynject",
			"/etc/apt",
			"/etc/apt/sources.list.d/cydia.list",
			"/etc/ssh/sshd_config",
			"/bin/bash",
			"/bin/sh",
			"/var/log/apt",
			"/private/var/lib/apt",
			"/private/var/lib/cydia",
			"/private/var/tmp/cydia.log",
			"/private/var/mobile/Library/SBSettings/Themes",
			"/.installed_unc0ver",
			"/.bootstrapped_electra",
		},
		RestrictedReadPaths: []string{
			"/.installed_unc0ver",
			"/.bootstrapped_electra",
			"/Applications/Cydia.app",
			"/Library/MobileSubstrate/MobileSubstrate.dylib",
			"/etc/apt",
			"/var/log/apt",
			"/usr/sbin/frida-server",
			"/usr/bin/cycript",
		},
		ProtectedDirectories: []string{
			"/",
			"/root/",
			"/private/",
			"/jb/",
		},
		SymlinkPaths: []string{
			"/var/lib/undecimus/apt",
			"/Applications",
			"/Library/Ringtones",
			"/Library/Wallpaper",
			"/usr/include",
			"/usr/libexec",
			"/usr/share",
			"/usr/arm-apple-darwin9",
		},
		InjectedLibraries: []string{
			"SubstrateLoader.dylib",
			"MobileSubstrate.dylib",
			"CydiaSubstrate",
			"TweakInject.dylib",
			"SSLKillSwitch2.dylib",
			"SSLKillSwitch.dylib",
			"SubstrateInserter",
			"SubstrateBootstrap",
			"PreferenceLoader",
			"RocketBootstrap",
			"WeeLoader",
			"libhooker",
			"Substitute",
			"Cephei",
			"Electra",
			"ABypass",
			"FlyJB",
			"FridaGadget",
			"frida",
			"cynject",
			"libcycript",
		},
		EnvironmentVariables: []string{
			"DYLD_INSERT_LIBRARIES",
			"DYLD_FRAMEWORK_PATH",
			"DYLD_LIBRARY_PATH",
			"LD_PRELOAD",
		},
		HandlerSchemes: []string{
			"cydia",
			"undecimus",
			"sileo",
			"zbra",
			"filza",
			"activator",
		},
		PathSignatures: []string{
			"/var/jb",
			"/var/jb/basebin",
			"/var/jb/etc/apt",
			"/var/jb/usr/bin/sshd",
			"/var/jb/Applications/Sileo.app",
			"/var/jb/Library/MobileSubstrate",
			"/private/preboot/jb",
			"/var/containers/Bundle/Application/.jbroot",
			"/usr/lib/TweakInject",
			"/var/binpack",
			"/cores/binpack",
			"/Applications/palera1nLoader.app",
		},
		DaemonNames: []string{
			"frida-server",
			"frida",
			"substrated",
			"jailbreakd",
			"checkra1nd",
			"amfidebilitate",
		},
		RuntimeClass:  "ShadowRuleset",
		RuntimeMember: "internalDictionary",
	}
}

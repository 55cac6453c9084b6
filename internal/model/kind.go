package model

// CheckKind identifies one tamper signal. The set is closed and fixed at
// compile time: every kind maps to exactly one probe.
type CheckKind string

const (
	KindExternalHandlers      CheckKind = "externalHandlers"
	KindSuspiciousFiles       CheckKind = "suspiciousFiles"
	KindFilePermissions       CheckKind = "filePermissions"
	KindRestrictedDirectories CheckKind = "restrictedDirectories"
	KindProcessFork           CheckKind = "processFork"
	KindSymbolicLinks         CheckKind = "symbolicLinks"
	KindLoadedLibraries       CheckKind = "loadedLibraries"
	KindRuntimeClasses        CheckKind = "runtimeClasses"
	KindEnvironmentVariables  CheckKind = "environmentVariables"
	KindPathSignatures        CheckKind = "pathSignatures"
	KindRunningProcesses      CheckKind = "runningProcesses"
)

// AllKinds returns the full kind set in its declared order. The aggregator
// executes probes in exactly this order, so failed kinds in a Verdict are
// always a subsequence of this slice.
func AllKinds() []CheckKind {
	return []CheckKind{
		KindExternalHandlers,
		KindSuspiciousFiles,
		KindFilePermissions,
		KindRestrictedDirectories,
		KindProcessFork,
		KindSymbolicLinks,
		KindLoadedLibraries,
		KindRuntimeClasses,
		KindEnvironmentVariables,
		KindPathSignatures,
		KindRunningProcesses,
	}
}

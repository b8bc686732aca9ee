package driven

// FileAccessTracker is notified after a file result executes successfully,
// so recently-opened files can be resurfaced later.
//
// The engine calls TrackAccess from its own goroutine; implementations
// must be safe for concurrent use and should not block for long.
type FileAccessTracker interface {
	// TrackAccess records that the file at path was opened.
	TrackAccess(path string)
}

package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	// ManDir is the user's man1 directory, shared with other programs.
	ManDir() (string, error)
	// DocsDir is where markdown command docs are written by default.
	DocsDir() (string, error)
}

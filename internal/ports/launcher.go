package ports

// Launcher starts executables selected by the user
type Launcher interface {
	// Launch starts path in the background and does not wait for it
	Launch(path string) error
}

package bookmark

// File and directory name constants used throughout bm.
const (
	// StorageFile is the default bookmark file, relative to the home directory
	StorageFile = ".cache/bm-bookmark"

	// ConfigDir is the subdirectory name under ~/.config
	ConfigDir = "bm"

	// ConfigFile is the optional configuration filename inside ConfigDir
	ConfigFile = "config.yaml"
)

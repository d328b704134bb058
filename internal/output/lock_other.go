//go:build !unix && !windows

package output

import "os"

// Platforms without advisory locks rely on O_APPEND alone.
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }

//go:build windows

package output

import (
	"math"
	"os"

	"golang.org/x/sys/windows"
)

// lockFile blocks until an exclusive lock over the whole file is held.
func lockFile(f *os.File) error {
	var overlapped windows.Overlapped

	return windows.LockFileEx(
		windows.Handle(f.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK,
		0,
		math.MaxUint32,
		math.MaxUint32,
		&overlapped,
	)
}

func unlockFile(f *os.File) error {
	var overlapped windows.Overlapped

	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, math.MaxUint32, math.MaxUint32, &overlapped)
}

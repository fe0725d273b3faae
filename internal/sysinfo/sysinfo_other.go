//go:build !windows

package sysinfo

import (
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// IsElevated reports whether the process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// FreeDiskBytes returns the free space available to the caller on the
// filesystem holding path.
func FreeDiskBytes(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return uint64(st.Bavail) * uint64(st.Bsize), nil
}

// OSRelease reports the host OS. Only Windows is a supported target; other
// platforms run the wizard for development and always warn.
func OSRelease() (Release, error) {
	return Release{Name: runtime.GOOS, Supported: false}, nil
}

// EnableVirtualTerminal is a no-op on platforms whose terminals speak ANSI
// natively.
func EnableVirtualTerminal() {}

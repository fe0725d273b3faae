//go:build windows

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the process token carries administrator
// rights.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// FreeDiskBytes returns the free space available to the caller on the
// volume holding path.
func FreeDiskBytes(path string) (uint64, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	var free, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(p, &free, &total, &totalFree); err != nil {
		return 0, err
	}
	return free, nil
}

// OSRelease detects the Windows release. Builds at 22000 and above report
// as Windows 11.
func OSRelease() (Release, error) {
	info := windows.RtlGetVersion()
	name := fmt.Sprintf("%d", info.MajorVersion)
	supported := false
	if info.MajorVersion == 10 {
		supported = true
		name = "10"
		if info.BuildNumber >= 22000 {
			name = "11"
		}
	}
	return Release{
		Name:      name,
		Build:     fmt.Sprintf("%d.%d.%d", info.MajorVersion, info.MinorVersion, info.BuildNumber),
		Supported: supported,
	}, nil
}

// EnableVirtualTerminal switches the console to ANSI escape processing so
// colors and box drawing render in plain cmd.exe. Failure is ignored;
// output degrades to uncolored text.
func EnableVirtualTerminal() {
	handle, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return
	}
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return
	}
	_ = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}

//go:build windows

package sysenv

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const envKeyPath = `Environment`

// registryStore persists variables under HKCU\Environment, the user-scope
// store the shell reads when starting new processes.
type registryStore struct{}

// Open returns the user-scope persistent environment store.
func Open() (Store, error) {
	return registryStore{}, nil
}

func (registryStore) Get(name string) (string, bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", false, err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if errors.Is(err, registry.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (registryStore) Set(name, value string) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	// REG_EXPAND_SZ so %VAR% references inside PATH entries keep expanding.
	return k.SetExpandStringValue(name, value)
}

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

const (
	hwndBroadcast   = 0xFFFF
	wmSettingChange = 0x001A
	smtoAbortIfHung = 0x0002
)

// broadcastNotifier tells running processes that the environment changed so
// new terminals pick up the updated PATH without a logoff.
type broadcastNotifier struct{}

// NewNotifier returns the platform environment-change notifier.
func NewNotifier() Notifier {
	return broadcastNotifier{}
}

func (broadcastNotifier) Notify() {
	env, err := syscall.UTF16PtrFromString("Environment")
	if err != nil {
		return
	}
	var result uintptr
	// Errors are ignored; the registry write already took effect.
	_, _, _ = procSendMessageTimeoutW.Call(
		uintptr(hwndBroadcast),
		uintptr(wmSettingChange),
		0,
		uintptr(unsafe.Pointer(env)),
		uintptr(smtoAbortIfHung),
		uintptr(5000),
		uintptr(unsafe.Pointer(&result)),
	)
}

//go:build !windows

package sysenv

import "errors"

// ErrUnsupported is returned when no persistent environment store exists on
// this platform.
var ErrUnsupported = errors.New("persistent environment store is only available on Windows")

// Open returns the user-scope persistent environment store.
func Open() (Store, error) {
	return nil, ErrUnsupported
}

// NewNotifier returns the platform environment-change notifier.
func NewNotifier() Notifier {
	return NopNotifier{}
}

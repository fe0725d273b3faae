// Package sysenv abstracts the operating system's persistent, user-scope
// environment variable store and the change notification that tells other
// processes the store was mutated. On Windows the store is the
// HKCU\Environment registry key; elsewhere both fall back to explicit
// unsupported/no-op implementations so the rest of the wizard stays
// portable.
package sysenv

// Store is read/write access to persistent user-scope environment
// variables. Reads and writes are independent operations with no locking;
// a concurrent external mutation between a Get and a Set is overwritten.
// The wizard assumes single-operator, single-session use.
type Store interface {
	// Get returns the stored value and whether the variable exists.
	// A missing variable is not an error.
	Get(name string) (value string, ok bool, err error)
	Set(name, value string) error
}

// Notifier broadcasts an environment-change notification to other running
// processes. Delivery is best effort; the persisted value takes effect in
// newly launched processes regardless.
type Notifier interface {
	Notify()
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify() {}

// Copyright (c) 2026 ircclient authors
// released under the MIT license

//go:build plan9 || solaris

package transcript

type noopUnlocker struct{}

func (noopUnlocker) Unlock() error {
	return nil
}

// no flock here; concurrent clients on one transcript are not detected
func lockFile(path string) (unlocker, error) {
	return noopUnlocker{}, nil
}

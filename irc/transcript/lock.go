// Copyright (c) 2026 ircclient authors
// released under the MIT license

//go:build !(plan9 || solaris)

package transcript

import (
	"github.com/gofrs/flock"
)

// lockFile takes an exclusive lock on path without blocking.
func lockFile(path string) (unlocker, error) {
	f := flock.New(path)
	success, err := f.TryLock()
	if err != nil {
		return nil, err
	} else if !success {
		return nil, ErrLocked
	}
	return f, nil
}

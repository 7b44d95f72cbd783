//go:build plan9
// +build plan9

// Copyright (c) 2020 Shivaram Lingamneni
// released under the MIT license

package utils

import (
	"os"
	"syscall"
)

var (
	// ExitSignals are the signals the client will quit on.
	// (no SIGQUIT on plan9)
	ExitSignals = []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}

	// no SIGUSR1 on plan9
	TracebackSignals []os.Signal
)

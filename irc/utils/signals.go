//go:build !plan9 && !windows
// +build !plan9,!windows

// Copyright (c) 2020 Shivaram Lingamneni
// released under the MIT license

package utils

import (
	"os"
	"syscall"
)

var (
	// ExitSignals are the signals the client will quit on.
	ExitSignals = []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}

	// TracebackSignals dump every goroutine's stack to the log.
	TracebackSignals = []os.Signal{
		syscall.SIGUSR1,
	}
)

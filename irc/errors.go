// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 ircclient authors
// released under the MIT license

package irc

import (
	"errors"
	"fmt"
)

// Runtime Errors
var (
	errNotConnected = errors.New("Not connected")
	errReadQ        = errors.New("ReadQ Exceeded")
)

// Config Errors
var (
	ErrServerAddressMissing  = errors.New("Server address missing")
	ErrServerAddressInvalid  = errors.New("Server address must be of the form host:port")
	ErrTransportConflict     = errors.New("Only one of server address and websocket URL can be set")
	ErrHostnameInvalid       = errors.New("Handshake hostname must match the format of a hostname")
	ErrNickMissing           = errors.New("Nickname missing")
	ErrNickInvalid           = errors.New("Nickname contains forbidden characters")
	ErrTranscriptPathMissing = errors.New("Transcript is enabled but path is empty")
	ErrKafkaBrokersMissing   = errors.New("Kafka sink is enabled but no brokers are defined")
	ErrKafkaTopicMissing     = errors.New("Kafka sink is enabled but topic is empty")
	ErrLoggerExcludeEmpty    = errors.New("Encountered logging type '-' with no type to exclude")
	ErrLoggerFilenameMissing = errors.New("Logging configuration specifies 'file' method but 'filename' is empty")
	ErrLoggerHasNoTypes      = errors.New("Logger has no types to log")
)

// CertKeyError is returned when the configured client certificate and key
// can't be loaded. LoadConfig still returns the rest of the configuration.
type CertKeyError struct {
	Err error
}

func (ck *CertKeyError) Error() string {
	return fmt.Sprintf("Invalid TLS cert/key pair: %v", ck.Err)
}

func (ck *CertKeyError) Unwrap() error {
	return ck.Err
}

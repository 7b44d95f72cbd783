// Copyright (c) 2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 ircclient authors
// released under the MIT license

package logger

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Level represents the level to log messages at.
type Level int

const (
	// LogDebug represents debug messages.
	LogDebug Level = iota
	// LogInfo represents informational messages.
	LogInfo
	// LogWarning represents warnings.
	LogWarning
	// LogError represents errors.
	LogError
)

var (
	// LogLevelNames takes a config name and gives the real log level.
	LogLevelNames = map[string]Level{
		"debug":    LogDebug,
		"info":     LogInfo,
		"warn":     LogWarning,
		"warning":  LogWarning,
		"warnings": LogWarning,
		"error":    LogError,
		"errors":   LogError,
	}
	// LogLevelDisplayNames gives the display name to use for our log levels.
	LogLevelDisplayNames = map[Level]string{
		LogDebug:   "debug",
		LogInfo:    "info",
		LogWarning: "warn",
		LogError:   "error",
	}

	// alternate names for log types that may appear in yaml configs;
	// canonicalized when loading configs, but not during logging.
	typeAliases = map[string]string{
		"userinput":  "rawin",
		"useroutput": "rawout",
		"input":      "rawin",
		"output":     "rawout",
	}
)

func resolveTypeAlias(typeName string) (result string) {
	if canonicalized, ok := typeAliases[typeName]; ok {
		return canonicalized
	}
	return typeName
}

// Manager is the main interface used to log debug/info/error messages.
type Manager struct {
	configMutex  sync.RWMutex
	loggers      []singleLogger
	files        map[string]*logFile
	stdio        *output
	loggingRawIO atomic.Uint32
}

// LoggingConfig represents the configuration of a single logger.
type LoggingConfig struct {
	Method        string
	MethodStdout  bool
	MethodStderr  bool
	MethodFile    bool
	Filename      string
	TypeString    string   `yaml:"type"`
	Types         []string `yaml:"real-types"`
	ExcludedTypes []string `yaml:"real-excluded-types"`
	LevelString   string   `yaml:"level"`
	Level         Level    `yaml:"level-real"`
}

// NewManager returns a new log manager.
func NewManager(config []LoggingConfig) (*Manager, error) {
	var logger Manager

	if err := logger.ApplyConfig(config); err != nil {
		return nil, err
	}

	return &logger, nil
}

// output is one destination for log lines; loggers sharing a destination
// share its lock, so lines are never interleaved.
type output struct {
	sync.Mutex
	stdout io.Writer
	stderr io.Writer
}

func (o *output) write(w io.Writer, line []byte) {
	o.Lock()
	defer o.Unlock()
	w.Write(line)
}

// logFile is an open log file. Loggers naming the same file share it.
type logFile struct {
	sync.Mutex
	file   *os.File
	writer *bufio.Writer
}

func openLogFile(filename string) (*logFile, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("Could not open log file %s [%s]", filename, err.Error())
	}
	return &logFile{file: file, writer: bufio.NewWriter(file)}, nil
}

func (lf *logFile) write(line []byte) {
	lf.Lock()
	defer lf.Unlock()
	lf.writer.Write(line)
	lf.writer.Flush()
}

func (lf *logFile) close() error {
	lf.Lock()
	defer lf.Unlock()
	flushErr := lf.writer.Flush()
	closeErr := lf.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// ApplyConfig applies the given config to this logger, closing any files
// the previous config had open.
func (logger *Manager) ApplyConfig(config []LoggingConfig) error {
	logger.configMutex.Lock()
	defer logger.configMutex.Unlock()

	logger.closeFiles()
	logger.loggers = nil
	logger.loggingRawIO.Store(0)
	if logger.stdio == nil {
		logger.stdio = &output{stdout: os.Stdout, stderr: os.Stderr}
	}

	// for safety, this deep-copies all mutable data in `config`
	// XXX let's keep it that way
	var lastErr error
	for _, logConfig := range config {
		typeMap := make(map[string]bool)
		for _, name := range logConfig.Types {
			typeMap[resolveTypeAlias(name)] = true
		}
		excludedTypeMap := make(map[string]bool)
		for _, name := range logConfig.ExcludedTypes {
			excludedTypeMap[resolveTypeAlias(name)] = true
		}

		sLogger := singleLogger{
			stdio:         logger.stdio,
			stdout:        logConfig.MethodStdout,
			stderr:        logConfig.MethodStderr,
			level:         logConfig.Level,
			types:         typeMap,
			excludedTypes: excludedTypeMap,
		}
		ioEnabled := typeMap["rawin"] || typeMap["rawout"] || (typeMap["*"] && !(excludedTypeMap["rawin"] && excludedTypeMap["rawout"]))
		// raw I/O is only logged at level debug;
		if ioEnabled && logConfig.Level == LogDebug {
			logger.loggingRawIO.Store(1)
		}
		if logConfig.MethodFile {
			file, err := logger.file(logConfig.Filename)
			if err != nil {
				// keep the other methods of this logger working
				lastErr = err
			}
			sLogger.file = file
		}
		logger.loggers = append(logger.loggers, sLogger)
	}

	return lastErr
}

// file returns the open log file for filename, opening it if needed.
func (logger *Manager) file(filename string) (*logFile, error) {
	if lf, ok := logger.files[filename]; ok {
		return lf, nil
	}
	lf, err := openLogFile(filename)
	if err != nil {
		return nil, err
	}
	if logger.files == nil {
		logger.files = make(map[string]*logFile)
	}
	logger.files[filename] = lf
	return lf, nil
}

func (logger *Manager) closeFiles() (err error) {
	for _, lf := range logger.files {
		if closeErr := lf.close(); closeErr != nil {
			err = closeErr
		}
	}
	logger.files = nil
	return
}

// Close flushes and closes any log files. Nothing is logged afterwards.
func (logger *Manager) Close() error {
	logger.configMutex.Lock()
	defer logger.configMutex.Unlock()

	logger.loggers = nil
	logger.loggingRawIO.Store(0)
	return logger.closeFiles()
}

// IsLoggingRawIO returns true if raw wire input and output is being logged.
func (logger *Manager) IsLoggingRawIO() bool {
	return logger.loggingRawIO.Load() == 1
}

// Log logs the given message with the given details.
func (logger *Manager) Log(level Level, logType string, messageParts ...string) {
	logger.configMutex.RLock()
	defer logger.configMutex.RUnlock()

	var line []byte
	for i := range logger.loggers {
		sLogger := &logger.loggers[i]
		if !sLogger.capturing(level, logType) {
			continue
		}
		if line == nil {
			line = formatLine(time.Now(), level, logType, messageParts)
		}
		sLogger.write(line)
	}
}

// Debug logs the given message as a debug message.
func (logger *Manager) Debug(logType string, messageParts ...string) {
	logger.Log(LogDebug, logType, messageParts...)
}

// Info logs the given message as an info message.
func (logger *Manager) Info(logType string, messageParts ...string) {
	logger.Log(LogInfo, logType, messageParts...)
}

// Warning logs the given message as a warning message.
func (logger *Manager) Warning(logType string, messageParts ...string) {
	logger.Log(LogWarning, logType, messageParts...)
}

// Error logs the given message as an error message.
func (logger *Manager) Error(logType string, messageParts ...string) {
	logger.Log(LogError, logType, messageParts...)
}

// singleLogger is one configured logger: a set of destinations, a level,
// and the types it captures.
type singleLogger struct {
	stdio         *output
	stdout        bool
	stderr        bool
	file          *logFile
	level         Level
	types         map[string]bool
	excludedTypes map[string]bool
}

func (logger *singleLogger) capturing(level Level, logType string) bool {
	// no logging enabled
	if !(logger.stdout || logger.stderr || logger.file != nil) {
		return false
	}
	if level < logger.level {
		return false
	}
	return (logger.types["*"] || logger.types[logType]) && !logger.excludedTypes["*"] && !logger.excludedTypes[logType]
}

func (logger *singleLogger) write(line []byte) {
	if logger.stdout {
		logger.stdio.write(logger.stdio.stdout, line)
	}
	if logger.stderr {
		logger.stdio.write(logger.stdio.stderr, line)
	}
	if logger.file != nil {
		logger.file.write(line)
	}
}

// formatLine assembles a full log line, newline included.
func formatLine(now time.Time, level Level, logType string, messageParts []string) []byte {
	var rawBuf bytes.Buffer
	// XXX magic number here: 10 is len("transcript"), the longest log category name
	// in current use. it's not a big deal if this number gets out of date.
	fmt.Fprintf(&rawBuf, "%s : %-5s : %-10s : ", now.UTC().Format("2006-01-02T15:04:05.000Z"), LogLevelDisplayNames[level], logType)
	for i, p := range messageParts {
		rawBuf.WriteString(p)

		if i != len(messageParts)-1 {
			rawBuf.WriteString(" : ")
		}
	}
	rawBuf.WriteRune('\n')
	return rawBuf.Bytes()
}

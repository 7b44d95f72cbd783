// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 ircclient authors
// released under the MIT license

package irc

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/ergochat/irc-go/ircutils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/ergochat/ircclient/irc/kafka"
	"github.com/ergochat/ircclient/irc/logger"
	"github.com/ergochat/ircclient/irc/message"
	"github.com/ergochat/ircclient/irc/transcript"
)

// here's how this works: exported (capitalized) members of the config structs
// are defined in the YAML file and deserialized directly from there. They may
// be postprocessed and overwritten by LoadConfig. Unexported (lowercase) members
// are derived from the exported members in LoadConfig.

const (
	defaultPort        = "6667"
	defaultMaxReadQ    = "16k"
	defaultDialTimeout = 30 * time.Second
)

// TLSConnectConfig defines how to verify the server and, optionally,
// which client certificate to present.
type TLSConnectConfig struct {
	Cert               string
	Key                string
	ServerName         string `yaml:"servername"`
	InsecureSkipVerify bool   `yaml:"insecure-skip-verify"`
}

// Config returns the TLS configuration associated with this TLSConnectConfig.
func (conf *TLSConnectConfig) Config(host string) (*tls.Config, error) {
	config := &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: conf.InsecureSkipVerify,
	}
	if conf.ServerName != "" {
		config.ServerName = conf.ServerName
	}
	if conf.Cert != "" || conf.Key != "" {
		cert, err := tls.LoadX509KeyPair(conf.Cert, conf.Key)
		if err != nil {
			return nil, &CertKeyError{Err: err}
		}
		config.Certificates = []tls.Certificate{cert}
	}
	return config, nil
}

// ServerConfig describes the peer to connect to.
type ServerConfig struct {
	Address   string
	WebSocket string `yaml:"websocket"`

	TLS     bool             `yaml:"tls"`
	TLSOpts TLSConnectConfig `yaml:"tls-opts"`

	Password       string
	Charset        string
	Hostname       string
	ConnectTimeout time.Duration `yaml:"connect-timeout"`
	MaxReadQString string        `yaml:"max-readq"`
	MaxReadQBytes  int           `yaml:"-"`

	host      string
	tlsConfig *tls.Config
	decoder   *message.Decoder
}

// ClientConfig describes the identity presented in the handshake.
type ClientConfig struct {
	Nick     string
	Username string
	Realname string
	Autojoin []string
}

// Config defines the overall configuration.
type Config struct {
	Network struct {
		Name string
	}

	Server ServerConfig

	Client ClientConfig

	Transcript transcript.Config

	Kafka kafka.Config

	Logging []logger.LoggingConfig

	EnvFile string `yaml:"env-file"`

	Filename string
}

// Host returns the host part of the server address or websocket URL.
func (conf *ServerConfig) Host() string {
	return conf.host
}

// TLSConfig returns the TLS configuration for the connection, or nil for plaintext.
func (conf *ServerConfig) TLSConfig() *tls.Config {
	return conf.tlsConfig
}

// Decoder returns the decoder for the configured charset.
func (conf *ServerConfig) Decoder() *message.Decoder {
	return conf.decoder
}

// validNick rejects characters that would change the meaning of a nick
// in the protocol (targets, masks, prefixes).
func validNick(nick string) bool {
	if nick == "" || strings.ContainsAny(nick, " ,*?!@\r\n\x00") {
		return false
	}
	switch nick[0] {
	case '#', '&', ':', '$':
		return false
	}
	return true
}

// LoadConfig loads the given YAML configuration file.
func LoadConfig(filename string) (config *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = new(Config)
	}

	config.Filename = filename

	err = config.loadEnvironment()
	if err != nil {
		return nil, err
	}

	err = config.postprocess()
	if err != nil {
		if _, isCertError := err.(*CertKeyError); isCertError {
			return config, err
		}
		return nil, err
	}
	return config, nil
}

// loadEnvironment applies IRCCLIENT_* overrides from the environment,
// reading env-file first if one is configured. Variables already set in
// the environment take precedence over the file.
func (config *Config) loadEnvironment() error {
	if config.EnvFile != "" {
		if err := godotenv.Load(config.EnvFile); err != nil {
			return fmt.Errorf("Could not load env-file: %w", err)
		}
	}
	if password := os.Getenv("IRCCLIENT_PASSWORD"); password != "" {
		config.Server.Password = password
	}
	if nick := os.Getenv("IRCCLIENT_NICK"); nick != "" {
		config.Client.Nick = nick
	}
	return nil
}

func (config *Config) postprocess() (err error) {
	server := &config.Server
	if server.Address == "" && server.WebSocket == "" {
		return ErrServerAddressMissing
	}
	if server.Address != "" && server.WebSocket != "" {
		return ErrTransportConflict
	}
	if server.WebSocket != "" {
		wsURL, err := url.Parse(server.WebSocket)
		if err != nil {
			return fmt.Errorf("Could not parse websocket URL: %w", err)
		}
		if wsURL.Scheme != "ws" && wsURL.Scheme != "wss" {
			return fmt.Errorf("Websocket URL must use ws or wss, not %s", wsURL.Scheme)
		}
		server.host = wsURL.Hostname()
		server.TLS = wsURL.Scheme == "wss"
	} else {
		host, port, err := net.SplitHostPort(server.Address)
		if err != nil {
			// bare hostname: use the standard port
			host, port = server.Address, defaultPort
			if strings.Contains(host, ":") {
				return ErrServerAddressInvalid
			}
			server.Address = net.JoinHostPort(host, port)
		}
		if host == "" {
			return ErrServerAddressInvalid
		}
		server.host = host
	}
	// a missing client certificate is reported last, so that the rest of
	// the config is usable for creating one
	var certErr error
	if server.TLS {
		server.tlsConfig, certErr = server.TLSOpts.Config(server.host)
	}
	if server.Hostname != "" && !ircutils.HostnameIsValid(server.Hostname) {
		return ErrHostnameInvalid
	}
	if server.ConnectTimeout <= 0 {
		server.ConnectTimeout = defaultDialTimeout
	}
	if server.MaxReadQString == "" {
		server.MaxReadQString = defaultMaxReadQ
	}
	maxReadQBytes, err := bytefmt.ToBytes(server.MaxReadQString)
	if err != nil {
		return fmt.Errorf("Could not parse maximum ReadQ size (make sure it only contains whole numbers): %s", err.Error())
	}
	server.MaxReadQBytes = int(maxReadQBytes)
	if server.MaxReadQBytes < message.MaxLineLength {
		server.MaxReadQBytes = message.MaxLineLength
	}
	server.decoder, err = message.NewDecoder(server.Charset)
	if err != nil {
		return err
	}

	if config.Client.Nick == "" {
		return ErrNickMissing
	}
	if !validNick(config.Client.Nick) {
		return ErrNickInvalid
	}
	if config.Client.Username == "" {
		config.Client.Username = config.Client.Nick
	}
	if config.Client.Realname == "" {
		config.Client.Realname = config.Client.Nick
	}

	if config.Transcript.Enabled {
		if config.Transcript.Path == "" {
			return ErrTranscriptPathMissing
		}
		if config.Transcript.TTL <= 0 {
			config.Transcript.TTL = transcript.DefaultTTL
		}
	}

	if config.Kafka.Enabled {
		if len(config.Kafka.Brokers) == 0 {
			return ErrKafkaBrokersMissing
		}
		if config.Kafka.Topic == "" {
			return ErrKafkaTopicMissing
		}
		if config.Kafka.BatchTimeout <= 0 {
			config.Kafka.BatchTimeout = time.Second
		}
	}

	config.Logging, err = processLoggingConfig(config.Logging)
	if err != nil {
		return err
	}
	return certErr
}

func processLoggingConfig(logging []logger.LoggingConfig) (newLogConfigs []logger.LoggingConfig, err error) {
	for _, logConfig := range logging {
		// methods
		methods := make(map[string]bool)
		for _, method := range strings.Split(logConfig.Method, " ") {
			if len(method) > 0 {
				methods[strings.ToLower(method)] = true
			}
		}
		if methods["file"] && logConfig.Filename == "" {
			return nil, ErrLoggerFilenameMissing
		}
		logConfig.MethodFile = methods["file"]
		logConfig.MethodStdout = methods["stdout"]
		logConfig.MethodStderr = methods["stderr"]

		// levels
		level, exists := logger.LogLevelNames[strings.ToLower(logConfig.LevelString)]
		if !exists {
			return nil, fmt.Errorf("Could not translate log level [%s]", logConfig.LevelString)
		}
		logConfig.Level = level

		// types
		for _, typeStr := range strings.Split(logConfig.TypeString, " ") {
			if len(typeStr) == 0 {
				continue
			}
			if typeStr == "-" {
				return nil, ErrLoggerExcludeEmpty
			}
			if typeStr[0] == '-' {
				typeStr = typeStr[1:]
				logConfig.ExcludedTypes = append(logConfig.ExcludedTypes, typeStr)
			} else {
				logConfig.Types = append(logConfig.Types, typeStr)
			}
		}
		if len(logConfig.Types) < 1 {
			return nil, ErrLoggerHasNoTypes
		}

		newLogConfigs = append(newLogConfigs, logConfig)
	}
	return
}

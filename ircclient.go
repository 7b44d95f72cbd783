// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 ircclient authors
// released under the MIT license

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/docopt/docopt-go"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/ergochat/ircclient/irc"
	"github.com/ergochat/ircclient/irc/kafka"
	"github.com/ergochat/ircclient/irc/logger"
	"github.com/ergochat/ircclient/irc/message"
	"github.com/ergochat/ircclient/irc/mkcerts"
	"github.com/ergochat/ircclient/irc/transcript"
	"github.com/ergochat/ircclient/irc/utils"
)

// set via linker flags, either by make or by goreleaser:
var commit = ""  // git hash
var version = "" // tagged version

// get a password from stdin from the user
func getPasswordFromTerminal() string {
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatal("Error reading password:", err.Error())
	}
	return string(bytePassword)
}

// implements the `ircclient parse` command: print the structured form of
// each line, one per argument or one per line of stdin
func doParse(lines []string) (failed bool) {
	if len(lines) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
	}
	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		msg, err := message.Parse(line + "\r\n")
		if err != nil {
			fmt.Printf("%q: %v\n", line, err)
			failed = true
			continue
		}
		fmt.Printf("origin=%q kind=%s params=%q\n", msg.Origin, msg.Kind.String(), msg.Params)
		if encoded, err := msg.Line(); err == nil {
			fmt.Printf("  canonical: %q\n", strings.TrimSuffix(string(encoded), "\r\n"))
		}
	}
	return
}

// implements the `ircclient mkcerts` command
func doMkcerts(config *irc.Config, quiet bool) {
	cert, key := config.Server.TLSOpts.Cert, config.Server.TLSOpts.Key
	if cert == "" || key == "" {
		log.Fatal("Set server.tls-opts.cert and server.tls-opts.key to the files to create")
	}
	if !quiet {
		log.Printf("making client certificate for %s\n", config.Client.Nick)
	}
	fingerprint, err := mkcerts.CreateCert(config.Client.Nick, cert, key)
	if err != nil {
		log.Fatal("  Could not create certificate: ", err.Error())
	}
	if !quiet {
		log.Printf("  Certificate created at %s : %s\n", cert, key)
	}
	fmt.Println(fingerprint)
}

// implements the `ircclient run` command
func doRun(config *irc.Config, logman *logger.Manager, quiet bool) error {
	if !quiet {
		logman.Info("client", fmt.Sprintf("%s starting", irc.Ver))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), utils.ExitSignals...)
	defer cancel()

	if len(utils.TracebackSignals) != 0 {
		tracebacks := make(chan os.Signal, 1)
		signal.Notify(tracebacks, utils.TracebackSignals...)
		defer signal.Stop(tracebacks)
		go func() {
			for {
				select {
				case <-tracebacks:
					var buf strings.Builder
					pprof.Lookup("goroutine").WriteTo(&buf, 1)
					logman.Info("client", "goroutine dump", buf.String())
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	con := newConsole(config, logman, os.Stdout)

	if config.Transcript.Enabled {
		store, err := transcript.Open(config.Transcript.Path, config.Transcript.TTL)
		if err != nil {
			return err
		}
		defer store.Close()
		con.store = store
		if err := con.replay(config.Transcript.Replay); err != nil {
			logman.Warning("transcript", "Could not replay transcript", err.Error())
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)

	if config.Kafka.Enabled {
		con.sink = kafka.NewSink(config.Kafka, config.Network.Name, logman)
		group.Go(func() error {
			return con.sink.Run(groupCtx)
		})
	}

	client := irc.NewClient(config, logman, con)
	group.Go(func() error {
		err := client.Run(groupCtx)
		// the connection is gone, so stop reading input too
		cancel()
		return err
	})
	group.Go(func() error {
		err := con.input(groupCtx, client, os.Stdin)
		switch {
		case err == errQuit:
			// the server ends the connection after QUIT
			return nil
		case err != nil:
			return err
		case groupCtx.Err() == nil && term.IsTerminal(int(syscall.Stdin)):
			// end of input on a terminal means quit
			return client.Quit("")
		}
		// piped input ran out; keep running until the server or a signal ends it
		return nil
	})

	return group.Wait()
}

func main() {
	irc.SetVersionString(version, commit)
	usage := `ircclient.
Usage:
	ircclient run [--conf <filename>] [--quiet] [--password]
	ircclient check [--conf <filename>]
	ircclient mkcerts [--conf <filename>] [--quiet]
	ircclient parse [<line>...]
	ircclient -h | --help
	ircclient --version
Options:
	--conf <filename>  Configuration file to use [default: ircclient.yaml].
	--quiet            Don't show startup/shutdown lines.
	--password         Prompt for the server password.
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, irc.Ver)

	// don't require a config file for parse
	if arguments["parse"].(bool) {
		lines, _ := arguments["<line>"].([]string)
		if doParse(lines) {
			os.Exit(1)
		}
		return
	}

	configfile := arguments["--conf"].(string)
	config, err := irc.LoadConfig(configfile)
	if err != nil {
		_, isCertError := err.(*irc.CertKeyError)
		if !(isCertError && arguments["mkcerts"].(bool)) {
			log.Fatal("Config file did not load successfully: ", err.Error())
		}
	}

	if arguments["mkcerts"].(bool) {
		doMkcerts(config, arguments["--quiet"].(bool))
		return
	}

	if arguments["check"].(bool) {
		fmt.Printf("%s: ok (server %s, nick %s)\n", configfile, config.Server.Host(), config.Client.Nick)
		return
	}

	if arguments["--password"].(bool) {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Enter Password: ")
			config.Server.Password = getPasswordFromTerminal()
			fmt.Print("\n")
		} else {
			reader := bufio.NewReader(os.Stdin)
			text, _ := reader.ReadString('\n')
			config.Server.Password = strings.TrimSpace(text)
		}
	}

	logman, err := logger.NewManager(config.Logging)
	if err != nil {
		log.Fatal("Logger did not load successfully:", err.Error())
	}
	defer logman.Close()

	if strings.Contains(irc.Ver, "unreleased") {
		logman.Debug("client", "You are running an unreleased build of ircclient.")
	}

	if err := doRun(config, logman, arguments["--quiet"].(bool)); err != nil && !errors.Is(err, context.Canceled) {
		logman.Error("client", fmt.Sprintf("Exiting: %s", err.Error()))
		logman.Close()
		os.Exit(1)
	}
}

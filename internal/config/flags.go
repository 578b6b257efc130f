package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a ops HTTP server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-secret-key key material for stored password encryption
//	-log-level zerolog level name
//	-limited start in limited mode
//	-bot-token Discord bot token
//	-ops-webhook Discord webhook URL for ops reports
//	-vendor-timeout per-request vendor timeout (e.g., "15s")
//	-reminder-interval period between reminder passes (e.g., "24h")
//	-reminder-anchor UTC time of day a pass is aligned to (e.g., "00:01")
//	-subscriber-timeout time budget for one subscriber (e.g., "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var secretKey, logLevel string
	var limited bool
	var botToken, opsWebhook string
	var vendorTimeout time.Duration
	var reminderInterval, subscriberTimeout time.Duration
	var reminderAnchor string

	fs := flag.NewFlagSet("cyphers-laptop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&secretKey, "secret-key", "", "Secret key for stored passwords")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&limited, "limited", false, "Start in limited mode")
	fs.StringVar(&botToken, "bot-token", "", "Discord bot token")
	fs.StringVar(&opsWebhook, "ops-webhook", "", "Discord ops webhook URL")
	fs.DurationVar(&vendorTimeout, "vendor-timeout", 0, "Vendor request timeout (e.g., 15s)")
	fs.DurationVar(&reminderInterval, "reminder-interval", 0, "Reminder pass interval (e.g., 24h)")
	fs.StringVar(&reminderAnchor, "reminder-anchor", "", "Reminder anchor time, UTC (e.g., 00:01)")
	fs.DurationVar(&subscriberTimeout, "subscriber-timeout", 0, "Per-subscriber timeout (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SecretKey: secretKey,
			LogLevel:  logLevel,
			Limited:   limited,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Vendor: Vendor{
			RequestTimeout: vendorTimeout,
		},
		Discord: Discord{
			BotToken:      botToken,
			OpsWebhookURL: opsWebhook,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			Reminder: Reminder{
				Interval:          reminderInterval,
				Anchor:            reminderAnchor,
				SubscriberTimeout: subscriberTimeout,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

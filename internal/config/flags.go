package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterClientFlags binds the client flags to fs and returns the config the
// parsed values land in. The returned value is only meaningful after fs has
// been parsed (directly or through cobra's AddGoFlagSet).
//
// Flags:
//
//	-backend wallet backend base URL
//	-d local session database DSN
//	-request-timeout outbound request timeout (0 = no deadline)
//	-poll-interval delay between empty wallet list polls
//	-max-poll-attempts empty wallet list poll cap (0 = unbounded)
//	-refresh-interval background wallet refresh period
//	-log-path client log file
//	-c/-config json file path with configs
func RegisterClientFlags(fs *flag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.StringVar(&cfg.Adapter.HTTPAddress, "backend", "", "Wallet backend base URL")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Local session database DSN")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m); 0 disables it")
	fs.DurationVar(&cfg.Workers.PollInterval, "poll-interval", 0, "Delay between empty wallet list polls")
	fs.IntVar(&cfg.Workers.MaxPollAttempts, "max-poll-attempts", 0, "Empty wallet list poll cap; 0 polls until wallets appear")
	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "Background wallet refresh period")
	fs.StringVar(&cfg.App.LogPath, "log-path", "", "Client log file")
	registerConfigPathFlags(fs, cfg)

	return cfg
}

// RegisterBackendFlags binds the stub backend flags to fs.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout
//	-token-sign-key user token signing key
//	-token-issuer user token issuer name
//	-token-duration user token lifetime (e.g., "1h", "30m")
//	-wallet-creation-delay delay before provisioned wallets become visible
//	-c/-config json file path with configs
func RegisterBackendFlags(fs *flag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.Func("a", "Net address host:port", func(s string) error {
		var addr NetAddress
		if err := addr.Set(s); err != nil {
			return err
		}
		cfg.Server.HTTPAddress = addr.String()
		return nil
	})
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Server.TokenSignKey, "token-sign-key", "", "User token signing key")
	fs.StringVar(&cfg.Server.TokenIssuer, "token-issuer", "", "User token issuer")
	fs.DurationVar(&cfg.Server.TokenDuration, "token-duration", 0, "User token lifetime (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.WalletCreationDelay, "wallet-creation-delay", 0, "Delay before provisioned wallets become visible")
	registerConfigPathFlags(fs, cfg)

	return cfg
}

func registerConfigPathFlags(fs *flag.FlagSet, cfg *StructuredConfig) {
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

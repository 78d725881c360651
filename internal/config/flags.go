package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

var errAddressFormat = errors.New("need address in a form `host:port`")

// NetAddress is a flag.Value for host:port listen addresses. The host is
// either "localhost" or a literal IP; IPv6 hosts go in brackets.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d is out of range 1-65535", port)
	}
	if host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address provided: %q", host)
	}

	a.Host, a.Port = host, port
	return nil
}

// ParseFlags reads the command line into a config layer. Unset flags stay
// zero so lower-priority sources can fill them.
func ParseFlags() *StructuredConfig {
	cfg := &StructuredConfig{}
	var httpAddr, grpcAddr NetAddress

	fs := flag.CommandLine
	fs.Var(&httpAddr, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN: PostgreSQL URI on the server, SQLite path on the client")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "JWT signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "JWT issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "JWT lifetime, e.g. 1h")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "HMAC key for booking request integrity")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request server timeout, e.g. 30s")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server-url", "", "backend base URL used by the portal")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "portal request timeout")
	fs.DurationVar(&cfg.Workers.SessionCheckInterval, "session-check-interval", 0, "backend session re-check interval")
	fs.DurationVar(&cfg.Client.SendCodeDelay, "send-code-delay", 0, "simulated login code send delay")

	_ = fs.Parse(os.Args[1:])

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()
	return cfg
}

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Log formats accepted by --log-format.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Flags holds the global command-line flags shared by every subcommand.
type Flags struct {
	ConfigPath     string
	GatewayURL     string
	RequestTimeout time.Duration
	Runtime        Runtime
}

// RegisterFlags binds the global flags to fs and returns the struct they are
// parsed into.
//
// Flags:
//
//	-c/--config json file path with configs
//	--gateway-url randgen gateway base URL
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--log-level zerolog level name
//	--log-format json or console
//	--exit-zero-on-error exit with status 0 even if the command fails
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	flags := &Flags{}

	fs.StringVarP(&flags.ConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&flags.GatewayURL, "gateway-url", "", "Randgen gateway base URL")
	fs.DurationVar(&flags.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&flags.Runtime.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&flags.Runtime.LogFormat, "log-format", "", "Log format (json, console)")
	fs.BoolVar(&flags.Runtime.ExitZeroOnError, "exit-zero-on-error", false, "Exit with status 0 even if the command fails")

	return flags
}

func (f *Flags) options() Options {
	opts := Options{}
	if f.GatewayURL != "" {
		opts[KeyGatewayURL] = f.GatewayURL
	}
	if f.RequestTimeout != 0 {
		opts[KeyRequestTimeout] = f.RequestTimeout
	}

	return opts
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind           string
	port           int
	allowedOrigins []string
	roomInboxSize  int
	clientBuffer   int
	verbose        bool
}

func (c *Config) validate() error {
	if c.bind == "" {
		return fmt.Errorf("bind address must not be empty")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	return nil
}

func (c *Config) addr() string {
	return fmt.Sprintf("%s:%d", c.bind, c.port)
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("HANABI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "hanabi-server",
		Short:         "Authoritative rules engine and room server for cooperative Hanabi games.",
		Args:          cobra.ExactArgs(0),
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: HANABI_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: HANABI_PORT)")
	fs.StringSliceVar(&cfg.allowedOrigins, "allowed-origin", nil, "origin patterns allowed to open websockets (env: HANABI_ALLOWED_ORIGIN)")
	fs.IntVar(&cfg.roomInboxSize, "room-inbox-size", 64, "mailbox depth per room (env: HANABI_ROOM_INBOX_SIZE)")
	fs.IntVar(&cfg.clientBuffer, "client-buffer", 8, "outbound event buffer per connection (env: HANABI_CLIENT_BUFFER)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging (env: HANABI_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("hanabi-server v{{.Version}}\n")

	return cmd
}

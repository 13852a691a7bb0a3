package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/randgen-voter/internal/config"
	"github.com/MKhiriev/randgen-voter/internal/dispatcher"
	"github.com/MKhiriev/randgen-voter/internal/logger"
	"github.com/MKhiriev/randgen-voter/internal/utils"
	"github.com/spf13/cobra"
)

const loggerRole = "randgen"

// Deps are the collaborators [Execute] wires into the command tree. Zero
// values select the production implementations.
type Deps struct {
	// ClientFactory builds the voting client for each command. Nil selects
	// the HTTP gateway client.
	ClientFactory dispatcher.ClientFactory
	// LogOutput receives every log record. Nil means os.Stderr.
	LogOutput io.Writer
	// Clipboard backs encrypt --copy. Nil means the system clipboard.
	Clipboard utils.Clipboard
	// IDGenerator produces invocation IDs. Nil means UUIDv7.
	IDGenerator utils.IDGenerator
	// Version is reported by --version.
	Version string
}

type runtimeState struct {
	deps Deps

	flags      *config.Flags
	cfg        *config.Config
	logger     *logger.Logger
	dispatcher *dispatcher.Dispatcher
}

// Execute runs the randgen command line with args (without the program
// name) and returns the process exit status.
func Execute(ctx context.Context, args []string, deps Deps) int {
	if deps.LogOutput == nil {
		deps.LogOutput = os.Stderr
	}

	s := &runtimeState{deps: deps}
	root := s.newRootCommand()
	root.SetArgs(args)
	root.SetOut(deps.LogOutput)
	root.SetErr(deps.LogOutput)

	err := root.ExecuteContext(ctx)
	if err != nil {
		var cmdErr *dispatcher.CommandError
		if !errors.As(err, &cmdErr) {
			// Command failures are logged by the dispatcher; anything else
			// never reached it.
			s.log().Error().Err(err).Msg("invalid invocation")
		}
	}

	return ExitCode(err, s.exitZeroOnError())
}

func (s *runtimeState) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "randgen",
		Short: "Randgen voting client command line",
		Long: `randgen registers voters, encrypts votes under the published FHE keyset
and submits them through a randgen gateway.

Options are read from a JSON file, RANDGEN_* environment variables and
flags, flags taking precedence.`,
		Version:       s.deps.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup()
		},
	}

	s.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		s.newRegisterVoterCommand(),
		s.newCheckVotingRewardCommand(),
		s.newPrintFHEKeysetCommand(),
		s.newEncryptCommand(),
		s.newSubmitVoteCommand(),
		s.newVoteNonstopCommand(),
	)

	return root
}

// setup loads the configuration and builds the logger and the dispatcher.
func (s *runtimeState) setup() error {
	cfg, err := config.Load(s.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewCLILogger(loggerRole, s.deps.LogOutput, cfg.Runtime.LogLevel, cfg.Runtime.LogFormat)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	s.cfg, s.logger = cfg, log

	if cfg.FileLoaded {
		log.Info().Str("path", cfg.FilePath).Msg("Config file loaded")
	} else {
		log.Debug().Str("path", cfg.FilePath).Msg("no config file, using empty configuration")
	}

	var opts []dispatcher.Option
	if s.deps.Clipboard != nil {
		opts = append(opts, dispatcher.WithClipboard(s.deps.Clipboard))
	}
	if s.deps.IDGenerator != nil {
		opts = append(opts, dispatcher.WithIDGenerator(s.deps.IDGenerator))
	}
	s.dispatcher = dispatcher.New(cfg.Options, s.deps.ClientFactory, log, opts...)

	return nil
}

func (s *runtimeState) log() *logger.Logger {
	if s.logger != nil {
		return s.logger
	}

	log, err := logger.NewCLILogger(loggerRole, s.deps.LogOutput, "", logger.FormatJSON)
	if err != nil {
		return logger.NewLogger(loggerRole)
	}
	return log
}

func (s *runtimeState) exitZeroOnError() bool {
	if s.cfg != nil {
		return s.cfg.Runtime.ExitZeroOnError
	}
	return s.flags != nil && s.flags.Runtime.ExitZeroOnError
}

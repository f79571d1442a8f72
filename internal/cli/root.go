// Package cli implements matchctl, an offline tool that runs the matching
// core over a YAML profile fixture and mints development tokens.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gdugdh24/roommate-backend/internal/infrastructure/logger"
)

const app = "matchctl"

// Actual version can be specified in build command.
var version = "unknown"

type runtime struct {
	v   *viper.Viper
	out io.Writer
	log *zap.Logger
}

// NewRootCmd builds the command tree. Each call gets its own viper
// instance so commands can be executed repeatedly in tests.
func NewRootCmd(out io.Writer) *cobra.Command {
	rt := &runtime{v: viper.New(), out: out, log: zap.NewNop()}

	root := &cobra.Command{
		Use:           app,
		Short:         "matchctl scores and ranks roommate profiles from a fixture file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := "warn"
			if rt.v.GetBool("debug") {
				level = "debug"
			}
			// stdout carries command output, so logs go to stderr.
			log, err := logger.New(level, rt.v.GetBool("json"), "stderr")
			if err != nil {
				return fmt.Errorf("creating a logger: %w", err)
			}
			rt.log = log
			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringP("fixtures", "f", "testdata/profiles.yaml", "YAML file with profiles")
	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	root.PersistentFlags().StringP("output", "o", "text", "output format: text or yaml")

	bindFlags(rt.v, root.PersistentFlags().Lookup, "fixtures", "debug", "json", "output")
	_ = rt.v.BindEnv("fixtures", "MATCHCTL_FIXTURES")

	root.AddCommand(
		newScoreCmd(rt),
		newDiscoverCmd(rt),
		newTokenCmd(rt),
		newVersionCmd(rt),
	)
	return root
}

// Execute runs matchctl against os.Args.
func Execute(out io.Writer) error {
	return NewRootCmd(out).Execute()
}

func newVersionCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(rt.out, "%s version: %s\n", app, version)
		},
	}
}

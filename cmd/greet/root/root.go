package root

import (
	"fmt"
	"io"

	"github.com/flarebyte/greet/cmd/greet/version"
	"github.com/flarebyte/greet/internal/greeting"
	"github.com/flarebyte/greet/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for greet.
func NewRootCmd() *cobra.Command {
	var (
		flagJSON    bool
		flagVerbose bool
	)

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print a greeting, as plain text or as a JSON record",
		Args:  noArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log := logging.New(cmd.ErrOrStderr(), flagVerbose)
			cmd.SetContext(logging.WithLogger(cmd.Context(), log))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := greeting.Options{EmitStructured: flagJSON}
			logging.FromContext(cmd.Context()).Debug("emitting greeting", "format", opts.Format())
			return greeting.Write(cmd.OutOrStdout(), opts)
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cmd.Flags().BoolVar(&flagJSON, "json", false, "Emit a JSON record instead of plain text")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostics to stderr")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return ArgumentError{Msg: err.Error()}
	})

	// Subcommands
	versionCmd := version.NewCmd()
	versionCmd.Args = noArgs
	cmd.AddCommand(versionCmd)

	return cmd
}

// Execute runs the root command with provided args and streams.
func Execute(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return ArgumentError{Msg: fmt.Sprintf("unknown argument %q for %q", args[0], cmd.CommandPath())}
	}
	return nil
}

package version

import (
	"fmt"
	"runtime"

	"github.com/flarebyte/greet/internal/buildinfo"
	"github.com/flarebyte/greet/internal/logging"
	"github.com/spf13/cobra"
)

// NewCmd implements `greet version`.
func NewCmd() *cobra.Command {
	var (
		flagShort bool
		flagJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.FromContext(cmd.Context()).Debug("printing version", "short", flagShort, "json", flagJSON)
			if flagShort || !flagJSON {
				// Stable output for E2E: exactly one line.
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "greet %s\n", buildinfo.Summary())
				return err
			}

			// JSON goes to stdout, a human friendly line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "greet version: %s\n", buildinfo.Summary())
			return encodeJSON(cmd.OutOrStdout(), details())
		},
	}

	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	return cmd
}

// Info is the detailed version record printed by `greet version --json`.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	BuiltBy string `json:"built_by"`
	Go      string `json:"go"`
	GoOS    string `json:"go_os"`
	GoArch  string `json:"go_arch"`
}

func details() Info {
	return Info{
		Version: buildinfo.ResolvedVersion(),
		Commit:  buildinfo.Commit,
		Date:    buildinfo.ResolvedDate(),
		BuiltBy: buildinfo.BuiltBy,
		Go:      runtime.Version(),
		GoOS:    runtime.GOOS,
		GoArch:  runtime.GOARCH,
	}
}

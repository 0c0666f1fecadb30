package cli

import (
	"log/slog"
	"os"

	"github.com/droidgen-labs/droidgen/internal/branding"
	"github.com/droidgen-labs/droidgen/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// verbose enables debug logs on stderr and identical lines in the report.
var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every probe and staged write to stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` adds activities to an existing Android project: the Java class, its
layout, the value resources it needs and its <activity> entry in AndroidManifest.xml.
Re-running never duplicates a resource or overwrites a file you edited.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

func newLogger() *slog.Logger {
	return logging.New(os.Stderr, verbose)
}

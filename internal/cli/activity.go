package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/droidgen-labs/droidgen/internal/activity"
	"github.com/droidgen-labs/droidgen/internal/config"
	"github.com/droidgen-labs/droidgen/internal/diff"
	"github.com/droidgen-labs/droidgen/internal/project"
	"github.com/droidgen-labs/droidgen/internal/prompt"
	"github.com/droidgen-labs/droidgen/internal/report"
	"github.com/droidgen-labs/droidgen/internal/scaffold"
	"github.com/droidgen-labs/droidgen/internal/settings"
	"github.com/droidgen-labs/droidgen/internal/taginsert"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
)

var (
	activityProject    string
	activityModule     string
	activitySourceSet  string
	activityAppPackage string
	activityPosition   string
	activityLauncher   bool
	activityYes        bool
	activityDryRun     bool
)

func init() {
	f := activityCmd.Flags()
	f.StringVarP(&activityProject, "project", "C", ".", "Android project root")
	f.StringVar(&activityModule, "module", "app", "Gradle module holding the activity")
	f.StringVar(&activitySourceSet, "source-set", "main", "Source set under <module>/src")
	f.StringVar(&activityAppPackage, "app-package", "", "Application package (default: read from the manifest)")
	f.StringVar(&activityPosition, "manifest-position", "", "Where the <activity> entry goes: before-close or after-open")
	f.BoolVar(&activityLauncher, "launcher", false, "Register the activity as the launcher")
	f.BoolVarP(&activityYes, "yes", "y", false, "Take defaults for every unanswered question")
	f.BoolVar(&activityDryRun, "dry-run", false, "Show the changes without writing anything")
	rootCmd.AddCommand(activityCmd)
}

var activityCmd = &cobra.Command{
	Use:   "activity [type] [name] [package] [layout]",
	Short: "Generate an activity and merge the resources it needs",
	Long: `Generate an activity class and layout, add the string, dimension and color
resources it references, and register it in AndroidManifest.xml.

Missing arguments are asked for interactively, or defaulted with --yes or
when stdin is not a terminal. Existing class or layout files are never
overwritten: the run stops before anything is written.

Examples:
  droidgen activity
  droidgen activity empty SettingsActivity com.app.view.activities
  droidgen activity fullscreen SplashActivity --launcher --dry-run`,
	Args: cobra.MaximumNArgs(4),
	RunE: runActivity,
}

func runActivity(cmd *cobra.Command, args []string) error {
	projectDir, err := filepath.Abs(activityProject)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}
	if err := config.Load(projectDir); err != nil {
		return err
	}

	logger := newLogger()
	fsys := osfs.New(projectDir)
	out := report.New(cmd.OutOrStdout(), config.GetBool(config.KeyColor), verbose)

	saved, err := settings.Load(fsys)
	if err != nil {
		return err
	}
	if warning := settings.CheckVersion(saved.Version, buildVersion); warning != "" {
		out.Warning(warning)
	}

	layout := project.NewLayout(
		stringSetting(cmd, "module", activityModule, config.KeyModule),
		stringSetting(cmd, "source-set", activitySourceSet, config.KeySourceSet),
	)
	logger.Debug("project layout", "root", projectDir, "module", layout.Module, "source_set", layout.SourceSet)

	appPackage := resolveAppPackage(cmd, fsys, layout, saved)

	position, err := manifestPosition(cmd)
	if err != nil {
		return err
	}

	given := givenFromArgs(args)
	if cmd.Flags().Changed("launcher") {
		given.Launcher = &activityLauncher
	}

	var asker *prompt.Asker
	if !activityYes && prompt.IsTerminal(cmd.InOrStdin()) {
		asker = prompt.NewAsker(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	req, err := prompt.Resolve(asker, given, appPackage, saved)
	if err != nil {
		return err
	}
	logger.Debug("resolved request", "type", req.Type, "name", req.Name, "package", req.Package, "layout", req.Layout, "launcher", req.Launcher)

	gen := scaffold.New(fsys, scaffold.Options{
		Layout:           layout,
		AppPackage:       appPackage,
		ManifestPosition: position,
		DryRun:           activityDryRun,
	}, logger)

	result, err := gen.Run(req)
	if result != nil {
		out.Events(result.Events)
	}
	if err != nil {
		if errors.Is(err, scaffold.ErrConflict) {
			out.Error("nothing was written; remove the existing files or pick another name")
		}
		return err
	}

	if activityDryRun {
		var added, removed int
		for _, c := range result.Changes {
			if err := diff.Render(cmd.OutOrStdout(), c.Path, c.Before, c.After, c.Created); err != nil {
				return err
			}
			a, r := diff.Stats(diff.TextDiff(c.Before, c.After))
			added += a
			removed += r
		}
		out.Info(dryRunSummary(len(result.Changes), added, removed))
		return nil
	}

	if err := settings.Save(fsys, rememberAnswers(saved, req, appPackage)); err != nil {
		return err
	}
	out.Success(fmt.Sprintf("%s created", req.Name))
	return nil
}

func dryRunSummary(files, added, removed int) string {
	return fmt.Sprintf("dry run: %d %s, +%d -%d lines; no files were written", files, plural(files, "file", "files"), added, removed)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// stringSetting returns the flag value when it was set explicitly and the
// configured value otherwise.
func stringSetting(cmd *cobra.Command, flag, value, key string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	if v := config.Get(key); v != "" {
		return v
	}
	return value
}

// resolveAppPackage picks the first non-empty of the flag, the config, the
// remembered answer and the manifest's package attribute.
func resolveAppPackage(cmd *cobra.Command, fsys billy.Filesystem, layout project.Layout, saved *settings.Settings) string {
	if pkg := stringSetting(cmd, "app-package", activityAppPackage, config.KeyAppPackage); pkg != "" {
		return pkg
	}
	if saved.AppPackage != "" {
		return saved.AppPackage
	}
	return scaffold.DetectAppPackage(project.NewTree(fsys, nil), layout)
}

func manifestPosition(cmd *cobra.Command) (*taginsert.Position, error) {
	value := stringSetting(cmd, "manifest-position", activityPosition, config.KeyManifestPosition)
	if value == "" {
		return nil, nil
	}
	pos, err := taginsert.ParsePosition(value)
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func givenFromArgs(args []string) prompt.Given {
	var g prompt.Given
	fields := []*string{&g.Type, &g.Name, &g.Package, &g.Layout}
	for i, arg := range args {
		*fields[i] = arg
	}
	return g
}

func rememberAnswers(saved *settings.Settings, req activity.Request, appPackage string) *settings.Settings {
	launcher := req.Launcher
	next := *saved
	next.Version = buildVersion
	if appPackage != "" {
		next.AppPackage = appPackage
	}
	next.ActivityType = string(req.Type)
	next.ActivityPackage = req.Package
	next.Launcher = &launcher
	return &next
}

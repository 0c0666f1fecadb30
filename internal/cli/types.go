package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/droidgen-labs/droidgen/internal/activity"
	"github.com/droidgen-labs/droidgen/internal/project"
	"github.com/droidgen-labs/droidgen/internal/resources"
	"github.com/spf13/cobra"
)

var typesJSON bool

func init() {
	typesCmd.Flags().BoolVar(&typesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(typesCmd)
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the activity types and the resources each one needs",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

type typeEntry struct {
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	Launcher         bool     `json:"launcher"`
	ManifestPosition string   `json:"manifest_position"`
	Resources        []string `json:"resources"`
}

func runTypes(cmd *cobra.Command, args []string) error {
	layout := project.NewLayout("", "")

	var entries []typeEntry
	for _, v := range activity.Variants() {
		name := activity.DefaultName(v.Type)
		obs, err := resources.ObligationsFor(layout, v.Type, resources.Params{
			LayoutName: activity.DefaultLayout(name),
			Title:      name,
		})
		if err != nil {
			return err
		}

		e := typeEntry{
			Type:             string(v.Type),
			Description:      v.Description,
			Launcher:         v.Launcher,
			ManifestPosition: v.ManifestPosition.String(),
		}
		for _, ob := range obs {
			e.Resources = append(e.Resources, describeObligation(ob))
		}
		entries = append(entries, e)
	}

	if typesJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TYPE\tLAUNCHER\tMANIFEST\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%t\t%s\t%s\n", e.Type, e.Launcher, e.ManifestPosition, e.Description)
		for _, r := range e.Resources {
			fmt.Fprintf(w, "\t\t\t  %s\n", r)
		}
	}
	return w.Flush()
}

// describeObligation renders "res/values/dimens.xml: activity_horizontal_margin, ...".
func describeObligation(ob resources.Obligation) string {
	if len(ob.Entries) == 0 {
		return ob.Stock + " (ensure only)"
	}
	probes := make([]string, len(ob.Entries))
	for i, e := range ob.Entries {
		probes[i] = resourceName(e.Probe)
	}
	return ob.Stock + ": " + strings.Join(probes, ", ")
}

// resourceName extracts the name attribute from a probe such as
// `<dimen name="activity_vertical_margin">`; bare names are returned as is.
func resourceName(probe string) string {
	const attr = `name="`
	i := strings.Index(probe, attr)
	if i < 0 {
		return probe
	}
	rest := probe[i+len(attr):]
	if j := strings.IndexByte(rest, '"'); j >= 0 {
		return rest[:j]
	}
	return rest
}

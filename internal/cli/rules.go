package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pkaminsky/claimtriage/internal/route"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the routing rules and fast-track threshold",
	Long: `Rules prints the routing rule summary: which conditions send a claim to
each of the four workflows, and the fast-track damage threshold. The rules
are evaluated in strict priority order: missing fields, fraud indicators,
injury, then claim value.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		router := route.NewRouter()

		out := struct {
			FastTrackThreshold int               `yaml:"fast_track_threshold"`
			Rules              map[string]string `yaml:"rules"`
		}{
			FastTrackThreshold: route.FastTrackThreshold,
			Rules:              map[string]string{},
		}
		for r, criteria := range router.RulesSummary() {
			out.Rules[string(r)] = criteria
		}

		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshal rules: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

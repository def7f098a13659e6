package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"fitlog/internal/planner"
	"fitlog/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var planFormat string

// planOutput is the document written by --format json and --format yaml.
type planOutput struct {
	Email            string            `json:"email" yaml:"email"`
	ProfileCompleted bool              `json:"profileCompleted" yaml:"profileCompleted"`
	Plan             []planner.PlanDay `json:"plan" yaml:"plan"`
}

var planCmd = &cobra.Command{
	Use:   "plan <email>",
	Short: "Print the suggested weekly plan of a user",
	Long: `Print the six-day split suggested for a user's body metrics.

FORMATS:

  text   one line per day (default)
  yaml   YAML document
  json   JSON document`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		user, err := findUser(ctx, args[0])
		if err != nil {
			return err
		}

		plan, completed, err := service.NewProfileService(users).Plan(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("failed to build plan: %w", err)
		}

		doc := planOutput{Email: user.Email, ProfileCompleted: completed, Plan: plan}
		out := cmd.OutOrStdout()

		switch strings.ToLower(planFormat) {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return err
			}
			return enc.Close()
		case "text", "":
			if !completed {
				fmt.Fprintln(out, color.YellowString("Profile incomplete: missing metrics count as zero."))
			}
			for _, day := range plan {
				fmt.Fprintf(out, "%-6s %-22s %s\n", day.Day, day.Focus,
					color.New(color.Faint).Sprint(strings.Join(day.Exercises, ", ")))
			}
			return nil
		default:
			return fmt.Errorf("unknown format: %s (use text, yaml or json)", planFormat)
		}
	},
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "text", "output format: text, yaml or json")
	rootCmd.AddCommand(planCmd)
}

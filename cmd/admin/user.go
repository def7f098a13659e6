package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"u"},
	Short:   "Inspect or delete accounts",
}

var userShowCmd = &cobra.Command{
	Use:   "show <email>",
	Short: "Show an account and its body-metric profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		user, err := findUser(ctx, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)
		fmt.Fprintf(out, "%s %s <%s>\n", faint.Sprintf("#%d", user.ID), user.Name, user.Email)
		fmt.Fprintf(out, "  %s %s\n", faint.Sprint("joined:   "), user.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(out, "  %s %s\n", faint.Sprint("weight:   "), formatMetric(user.BodyWeightKg, "kg"))
		fmt.Fprintf(out, "  %s %s\n", faint.Sprint("height:   "), formatMetric(user.HeightCm, "cm"))
		fmt.Fprintf(out, "  %s %s\n", faint.Sprint("muscle:   "), formatMetric(user.MuscleWeightKg, "kg"))
		fmt.Fprintf(out, "  %s %s\n", faint.Sprint("body fat: "), formatMetric(user.FatPercentage, "%"))
		if !user.ProfileCompleted() {
			fmt.Fprintln(out, color.YellowString("  profile incomplete"))
		}
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:     "delete <email>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an account",
	Long: `Delete an account by email.

CAUTION:

  Every workout session of the user, with its strength sets and cardio
  entries, is deleted with it. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		user, err := findUser(ctx, args[0])
		if err != nil {
			return err
		}

		if err := users.Delete(ctx, user.ID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("✗ Deleted %s", user.Email))
		return nil
	},
}

func formatMetric(v *float64, unit string) string {
	if v == nil {
		return color.New(color.Faint).Sprint("not set")
	}
	return fmt.Sprintf("%.2f %s", *v, unit)
}

func init() {
	userCmd.AddCommand(userShowCmd, userDeleteCmd)
	rootCmd.AddCommand(userCmd)
}

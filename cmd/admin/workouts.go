package main

import (
	"fmt"
	"strings"

	"fitlog/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var workoutsLimit int

var workoutsCmd = &cobra.Command{
	Use:     "workouts <email>",
	Aliases: []string{"w"},
	Short:   "List a user's workout sessions",
	Long: `List a user's workout sessions, newest first.

Each session shows its date and notes, then one line per strength set and
per cardio activity.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		user, err := findUser(ctx, args[0])
		if err != nil {
			return err
		}

		sessions, err := workouts.ListRecentByUser(ctx, user.ID, workoutsLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No workouts found.")
			return nil
		}

		for _, s := range sessions {
			printSession(cmd, s)
		}
		return nil
	},
}

func printSession(cmd *cobra.Command, s models.WorkoutSession) {
	out := cmd.OutOrStdout()
	faint := color.New(color.Faint)

	header := color.New(color.Bold).Sprint(s.WorkoutDate.Format(models.DateLayout))
	if notes := strings.TrimSpace(s.Notes); notes != "" {
		header += faint.Sprintf(" (%s)", notes)
	}
	fmt.Fprintf(out, "%s %s\n", faint.Sprintf("#%d", s.ID), header)

	for _, set := range s.Strength {
		fmt.Fprintf(out, "  %-24s set %d  %d x %.2f kg\n", set.ExerciseName, set.SetOrder, set.Reps, set.WeightKg)
	}
	for _, c := range s.Cardio {
		fmt.Fprintf(out, "  %-24s %.0f min  %.2f km  %.0f kcal\n", c.ActivityName, c.TimeMinutes, c.DistanceKm, c.CaloriesBurned)
	}
}

func init() {
	workoutsCmd.Flags().IntVarP(&workoutsLimit, "limit", "n", 10, "maximum number of sessions (0 = all)")
	rootCmd.AddCommand(workoutsCmd)
}

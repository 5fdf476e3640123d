package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"roster/internal/service"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print roster aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := opts.openStore()
			if err != nil {
				return err
			}

			summary := service.NewStudentService(roster).Summary()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Students: %d\n", summary.Count)
			fmt.Fprintf(out, "Average grade: %.2f\n", summary.Average)
			if summary.Best != nil {
				fmt.Fprintf(out, "Best student: %s (%g)\n", summary.Best.Name, summary.Best.Grade)
			}
			for _, group := range summary.AgeGroups {
				fmt.Fprintf(out, "Age %d: %d\n", group.Age, group.Count)
			}
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"roster/internal/config"
	"roster/internal/store"
)

type rootOptions struct {
	dataFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "roster",
		Short:         "Student roster backed by a plain text file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.dataFile, "data", "", "roster file (default: students.txt next to the executable)")

	cmd.AddCommand(newServeCmd(opts), newStatsCmd(opts), newImportCmd(opts))
	return cmd
}

func (o *rootOptions) openStore() (*store.Store, error) {
	path := o.dataFile
	if path == "" {
		var err error
		if path, err = config.DefaultDataFile(); err != nil {
			return nil, err
		}
	}
	return store.New(path)
}

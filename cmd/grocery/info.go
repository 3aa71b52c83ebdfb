package main

import (
	"time"

	"github.com/Veraticus/grocery-list/internal/cli"
	"github.com/Veraticus/grocery-list/internal/grocery"
	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show today's date and system details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			return cli.RenderInfo(cmd.OutOrStdout(), grocery.SystemInfo(time.Now()), format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(cli.OutputText), "output format (text, json, yaml)")

	return cmd
}

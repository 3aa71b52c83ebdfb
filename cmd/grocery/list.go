package main

import (
	"github.com/Veraticus/grocery-list/internal/cli"
	"github.com/Veraticus/grocery-list/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the grocery list",
		Long:  `Show every item grouped by category, or only one category with --category.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := cli.ParseOutputFormat(viper.GetString(config.KeyOutput))
			if err != nil {
				return err
			}

			manager, settings, err := openList(cmd.Context())
			if err != nil {
				return err
			}

			return cli.RenderList(cmd.OutOrStdout(), manager, settings.Category, output)
		},
	}

	cmd.Flags().StringP("output", "o", string(cli.OutputText), "output format (text, json, yaml)")
	_ = viper.BindPFlag(config.KeyOutput, cmd.Flags().Lookup("output"))

	return cmd
}

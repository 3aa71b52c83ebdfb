package main

import (
	"fmt"

	"github.com/Veraticus/grocery-list/internal/cli"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <item> <quantity>",
		Short: "Add an item to the list",
		Long: `Add quantity units of an item. Adding to an existing item increases its
quantity; use --category to file a new item under a category.

A negative quantity must follow '--', for example: grocery add -- Milk -2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			manager, settings, err := openList(cmd.Context())
			if err != nil {
				return err
			}

			if err := manager.AddItem(cmd.Context(), args[0], quantity, settings.Category); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(),
				cli.FormatSuccess(cli.AddedMessage(args[0], quantity, manager.ItemCategory(args[0]))))
			return err
		},
	}
}

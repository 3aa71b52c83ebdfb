package main

import (
	"fmt"

	"github.com/Veraticus/grocery-list/internal/cli"
	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/grocery"
	"github.com/Veraticus/grocery-list/internal/model"
	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item> [quantity]",
		Short: "Remove an item, or some of it",
		Long: `Remove an item from the list. With a quantity only that many units are
removed; the item disappears once nothing is left. With --category the item
must belong to that category.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			quantity := 0
			if len(args) == 2 {
				q, err := parseQuantity(args[1])
				if err != nil {
					return err
				}
				quantity = q
			}

			manager, settings, err := openList(ctx)
			if err != nil {
				return err
			}

			if !manager.DoesItemExist(name) {
				return common.NotFound("item not found: %s", name)
			}
			if settings.Category != "" {
				want := model.NormalizeCategory(settings.Category)
				if got := manager.ItemCategory(name); got != want {
					return common.InvalidArgument("%s", cli.CategoryMismatchMessage(name, want, got))
				}
			}

			var message string
			if quantity == 0 {
				if err := manager.RemoveItem(ctx, name); err != nil {
					return err
				}
				message = cli.RemovedItemMessage(name)
			} else {
				if err := grocery.Subtract(ctx, manager, name, quantity); err != nil {
					return err
				}
				message = cli.RemovedQuantityMessage(name, quantity)
				if !manager.DoesItemExist(name) {
					message = cli.RemovedItemMessage(name)
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(message))
			return err
		},
	}
}

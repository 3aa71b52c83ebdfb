package main

import (
	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category <name> <command> [args...]",
		Short: "Run a command within a category",
		Long: `Run add, remove or list with the category set, as if --category had been
given. For example: grocery category Fruits add Apple 3`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			target, targetArgs, err := cmd.Root().Find(args[1:])
			if err != nil {
				return common.InvalidArgument("unknown command %q", args[1])
			}
			if target == cmd.Root() || target == cmd || target.RunE == nil {
				return common.InvalidArgument("unknown command %q", args[1])
			}

			if err := target.ParseFlags(targetArgs); err != nil {
				return common.InvalidArgument("%v", err)
			}
			targetArgs = target.Flags().Args()
			if err := target.ValidateArgs(targetArgs); err != nil {
				return common.InvalidArgument("%v", err)
			}

			viper.Set(config.KeyCategory, name)
			target.SetContext(cmd.Context())
			return target.RunE(target, targetArgs)
		},
	}

	// Flags after <name> belong to the nested command.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/grocery-list/internal/cli"
	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/config"
	"github.com/Veraticus/grocery-list/internal/grocery"
	"github.com/Veraticus/grocery-list/internal/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func webCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "web <port>",
		Short: "Serve the grocery list over HTTP",
		Long: `Serve the list as a small JSON API until interrupted:

  GET    /api/groceries          list items
  POST   /api/groceries          add {"name", "quantity", "category"}
  DELETE /api/groceries/{name}   remove an item
  GET    /api/categories         items grouped by category
  GET    /api/info               date and system details`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}

			manager, _, err := openList(cmd.Context())
			if err != nil {
				return err
			}

			serverConfig := web.DefaultConfig()
			serverConfig.ReadHeaderTimeout = viper.GetDuration(config.KeyWebReadHeader)
			server := web.NewServerWithConfig(manager, serverConfig)

			handler := cli.NewInterruptHandler(cmd.OutOrStdout())
			ctx := handler.HandleInterrupts(cmd.Context(), "Stopping grocery server")
			defer handler.Stop()

			if _, err := fmt.Fprintln(cmd.OutOrStdout(),
				cli.FormatInfo(servingMessage(manager, port))); err != nil {
				return err
			}

			return server.ListenAndServe(ctx, fmt.Sprintf(":%d", port))
		},
	}
}

func servingMessage(manager *grocery.Manager, port int) string {
	return cli.ServingMessage(manager.Path(), manager.Codec().Name(), manager.Len(), port)
}

func parsePort(arg string) (int, error) {
	port, err := strconv.Atoi(arg)
	if err != nil || port < 1 || port > 65535 {
		return 0, common.InvalidArgument("invalid port %q: must be between 1 and 65535", arg)
	}
	return port, nil
}

package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func getLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage card-patron links",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <card-number> <patron-id>",
		Short: "Link a card to a patron",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return newClient().post("/api/links", map[string]any{
				"card_number": number,
				"patron_id":   args[1],
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every link",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return newClient().get("/api/links")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <card-number>",
		Short: "Unlink a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().delete("/api/links/" + args[0])
		},
	})

	return cmd
}

package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func getCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage library cards",
	}

	var blocked bool
	insertCmd := &cobra.Command{
		Use:   "insert <number>",
		Short: "Register a library card",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return newClient().post("/api/cards", map[string]any{
				"number":     number,
				"is_blocked": blocked,
			})
		},
	}
	insertCmd.Flags().BoolVar(&blocked, "blocked", false, "register the card already blocked")
	cmd.AddCommand(insertCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every card",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return newClient().get("/api/cards")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <number>",
		Short: "Get one card",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().get("/api/cards/" + args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Count registered cards",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return newClient().get("/api/cards/count")
		},
	})

	var filterBlocked bool
	byBlockedCmd := &cobra.Command{
		Use:   "by-blocked",
		Short: "List cards by blocked state",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return newClient().get("/api/cards/by-blocked?blocked=" + strconv.FormatBool(filterBlocked))
		},
	}
	byBlockedCmd.Flags().BoolVar(&filterBlocked, "blocked", false, "blocked state to match")
	cmd.AddCommand(byBlockedCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "block <number>",
		Short: "Block a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().patch("/api/cards/"+args[0]+"/blocked", map[string]any{"blocked": true})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unblock <number>",
		Short: "Unblock a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().patch("/api/cards/"+args[0]+"/blocked", map[string]any{"blocked": false})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <number>",
		Short: "Delete a card (refused while reservations or a patron link remain)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().delete("/api/cards/" + args[0])
		},
	})

	return cmd
}

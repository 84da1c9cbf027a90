package main

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func getReservationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservation",
		Short: "Manage the reservation ledger",
	}

	var (
		dateFrom string
		dateTo   string
	)
	createCmd := &cobra.Command{
		Use:   "create <card-number> <book-code>",
		Short: "Reserve a book copy (omit dates for the default loan period)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"book_code": args[1]}
			if cmd.Flags().Changed("from") {
				body["date_from"] = dateFrom + "T00:00:00Z"
			}
			if cmd.Flags().Changed("to") {
				body["date_to"] = dateTo + "T00:00:00Z"
			}
			return newClient().post("/api/reservations/"+args[0], body)
		},
	}
	createCmd.Flags().StringVar(&dateFrom, "from", "", "start date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&dateTo, "to", "", "end date (YYYY-MM-DD)")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List reservations grouped by card",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return newClient().get("/api/reservations")
		},
	})

	var blocked bool
	delayedCmd := &cobra.Command{
		Use:   "delayed",
		Short: "List overdue reservations (optionally by card blocked state)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := "/api/reservations/delayed"
			if cmd.Flags().Changed("blocked") {
				path += "?blocked=" + strconv.FormatBool(blocked)
			}
			return newClient().get(path)
		},
	}
	delayedCmd.Flags().BoolVar(&blocked, "blocked", false, "card blocked state to match")
	cmd.AddCommand(delayedCmd)

	var newDateTo string
	extendCmd := &cobra.Command{
		Use:   "extend <card-number> <book-code>",
		Short: "Move a reservation end date",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().patch(
				"/api/reservations/"+args[0]+"/"+url.PathEscape(args[1])+"/period",
				map[string]any{"date_to": newDateTo + "T00:00:00Z"},
			)
		},
	}
	extendCmd.Flags().StringVar(&newDateTo, "to", "", "new end date (YYYY-MM-DD)")
	_ = extendCmd.MarkFlagRequired("to")
	cmd.AddCommand(extendCmd)

	var status string
	statusCmd := &cobra.Command{
		Use:   "set-status <card-number> <book-code>",
		Short: "Change a reservation status (reserved, picked or returned)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().patch(
				"/api/reservations/"+args[0]+"/"+url.PathEscape(args[1])+"/status",
				map[string]any{"status": status},
			)
		},
	}
	statusCmd.Flags().StringVar(&status, "status", "", "new status")
	_ = statusCmd.MarkFlagRequired("status")
	cmd.AddCommand(statusCmd)

	return cmd
}

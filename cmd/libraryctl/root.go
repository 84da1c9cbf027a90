package main

import (
	"os"

	"github.com/spf13/cobra"
)

var serverURL string

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "libraryctl",
		Short: "libraryctl talks to the library lending service",
		Long: `libraryctl is a console client for the library lending service.

It covers the whole API surface: the publication catalog, the book copy
registry, library cards, patrons, card-patron links and the reservation
ledger.

The server address comes from --server or the LIBRARY_SERVER environment
variable (default http://localhost:8080).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	defaultServer := os.Getenv("LIBRARY_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer,
		"base URL of the lending service")

	rootCmd.AddCommand(getPublicationCmd())
	rootCmd.AddCommand(getBookCmd())
	rootCmd.AddCommand(getCardCmd())
	rootCmd.AddCommand(getPatronCmd())
	rootCmd.AddCommand(getLinkCmd())
	rootCmd.AddCommand(getReservationCmd())

	return rootCmd
}

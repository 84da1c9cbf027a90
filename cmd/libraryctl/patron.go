package main

import (
	"net/url"

	"github.com/spf13/cobra"
)

func getPatronCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patron",
		Short: "Manage patrons",
	}

	var (
		name     string
		surname  string
		street   string
		number   string
		postCode string
	)
	insertCmd := &cobra.Command{
		Use:   "insert <id>",
		Short: "Register a patron",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"id": args[0]}
			if cmd.Flags().Changed("name") {
				body["name"] = name
			}
			if cmd.Flags().Changed("surname") {
				body["surname"] = surname
			}
			if cmd.Flags().Changed("street") || cmd.Flags().Changed("number") || cmd.Flags().Changed("post-code") {
				body["address"] = map[string]string{
					"street":    street,
					"number":    number,
					"post_code": postCode,
				}
			}
			return newClient().post("/api/patrons", body)
		},
	}
	insertCmd.Flags().StringVar(&name, "name", "", "first name")
	insertCmd.Flags().StringVar(&surname, "surname", "", "surname")
	insertCmd.Flags().StringVar(&street, "street", "", "address street")
	insertCmd.Flags().StringVar(&number, "number", "", "address number")
	insertCmd.Flags().StringVar(&postCode, "post-code", "", "address post code")
	cmd.AddCommand(insertCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every patron",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return newClient().get("/api/patrons")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get one patron",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().get("/api/patrons/" + url.PathEscape(args[0]))
		},
	})

	var (
		newStreet   string
		newNumber   string
		newPostCode string
	)
	setAddressCmd := &cobra.Command{
		Use:   "set-address <id>",
		Short: "Update a patron address",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().patch("/api/patrons/"+url.PathEscape(args[0])+"/address", map[string]string{
				"street":    newStreet,
				"number":    newNumber,
				"post_code": newPostCode,
			})
		},
	}
	setAddressCmd.Flags().StringVar(&newStreet, "street", "", "address street")
	setAddressCmd.Flags().StringVar(&newNumber, "number", "", "address number")
	setAddressCmd.Flags().StringVar(&newPostCode, "post-code", "", "address post code")
	_ = setAddressCmd.MarkFlagRequired("street")
	_ = setAddressCmd.MarkFlagRequired("number")
	_ = setAddressCmd.MarkFlagRequired("post-code")
	cmd.AddCommand(setAddressCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete-all",
		Short: "Delete every patron",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return newClient().delete("/api/patrons")
		},
	})

	return cmd
}

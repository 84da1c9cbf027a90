package main

import (
	"net/url"

	"github.com/spf13/cobra"
)

func getPublicationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publication",
		Short: "Manage the publication catalog",
	}

	var (
		title   string
		authors []string
		genres  []string
	)
	insertCmd := &cobra.Command{
		Use:   "insert <isbn>",
		Short: "Register a publication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"isbn": args[0]}
			if cmd.Flags().Changed("title") {
				body["title"] = title
			}
			if cmd.Flags().Changed("author") {
				body["authors"] = authors
			}
			if cmd.Flags().Changed("genre") {
				body["genres"] = genres
			}
			return newClient().post("/api/publications", body)
		},
	}
	insertCmd.Flags().StringVar(&title, "title", "", "publication title")
	insertCmd.Flags().StringArrayVar(&authors, "author", nil, "author (repeatable)")
	insertCmd.Flags().StringArrayVar(&genres, "genre", nil, "genre (repeatable)")
	cmd.AddCommand(insertCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every publication",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return newClient().get("/api/publications")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <isbn>",
		Short: "Get one publication",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().get("/api/publications/" + url.PathEscape(args[0]))
		},
	})

	cmd.AddCommand(findPublicationCmd("by-title", "title", "Find publications by title"))
	cmd.AddCommand(findPublicationCmd("by-author", "author", "Find publications by author"))
	cmd.AddCommand(findPublicationCmd("by-genre", "genre", "Find publications by genre"))

	var newTitle string
	setTitleCmd := &cobra.Command{
		Use:   "set-title <isbn>",
		Short: "Update a publication title (omit --title to clear it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"title": nil}
			if cmd.Flags().Changed("title") {
				body["title"] = newTitle
			}
			return newClient().patch("/api/publications/"+url.PathEscape(args[0])+"/title", body)
		},
	}
	setTitleCmd.Flags().StringVar(&newTitle, "title", "", "new title")
	cmd.AddCommand(setTitleCmd)

	var newAuthors []string
	setAuthorsCmd := &cobra.Command{
		Use:   "set-authors <isbn>",
		Short: "Replace the author list (omit --author to clear it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"authors": nil}
			if cmd.Flags().Changed("author") {
				body["authors"] = newAuthors
			}
			return newClient().patch("/api/publications/"+url.PathEscape(args[0])+"/authors", body)
		},
	}
	setAuthorsCmd.Flags().StringArrayVar(&newAuthors, "author", nil, "author (repeatable)")
	cmd.AddCommand(setAuthorsCmd)

	var newGenres []string
	setGenresCmd := &cobra.Command{
		Use:   "set-genres <isbn>",
		Short: "Replace the genre list (omit --genre to clear it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"genres": nil}
			if cmd.Flags().Changed("genre") {
				body["genres"] = newGenres
			}
			return newClient().patch("/api/publications/"+url.PathEscape(args[0])+"/genres", body)
		},
	}
	setGenresCmd.Flags().StringArrayVar(&newGenres, "genre", nil, "genre (repeatable)")
	cmd.AddCommand(setGenresCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <isbn>",
		Short: "Delete a publication",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().delete("/api/publications/" + url.PathEscape(args[0]))
		},
	})

	return cmd
}

// findPublicationCmd builds one "find by field" subcommand. Passing no
// flag asks the server for publications where the field is unset.
func findPublicationCmd(route, field, short string) *cobra.Command {
	var value string
	cmd := &cobra.Command{
		Use:   route,
		Short: short + " (omit --" + field + " to match unset fields)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := "/api/publications/" + route
			if cmd.Flags().Changed(field) {
				path += "?" + field + "=" + url.QueryEscape(value)
			}
			return newClient().get(path)
		},
	}
	cmd.Flags().StringVar(&value, field, "", field+" to match")
	return cmd
}

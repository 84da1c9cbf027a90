package main

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func getBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Manage the book copy registry",
	}

	var position int
	insertCmd := &cobra.Command{
		Use:   "insert <code> <isbn>",
		Short: "Register a book copy (omit --position for an uncatalogued copy)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"code": args[0], "isbn": args[1]}
			if cmd.Flags().Changed("position") {
				body["position"] = position
			}
			return newClient().post("/api/books", body)
		},
	}
	insertCmd.Flags().IntVar(&position, "position", 0, "shelf position")
	cmd.AddCommand(insertCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every book copy",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return newClient().get("/api/books")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <code>",
		Short: "Get one book copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().get("/api/books/" + url.PathEscape(args[0]))
		},
	})

	var findPosition int
	byPositionCmd := &cobra.Command{
		Use:   "by-position",
		Short: "Find copies by shelf position (omit --position for uncatalogued copies)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := "/api/books/by-position"
			if cmd.Flags().Changed("position") {
				path += "?position=" + strconv.Itoa(findPosition)
			}
			return newClient().get(path)
		},
	}
	byPositionCmd.Flags().IntVar(&findPosition, "position", 0, "shelf position")
	cmd.AddCommand(byPositionCmd)

	cmd.AddCommand(findBookCmd("by-title", "title", "Find copies by publication title"))
	cmd.AddCommand(findBookCmd("by-author", "author", "Find copies by author"))
	cmd.AddCommand(findBookCmd("by-genre", "genre", "Find copies by genre"))

	var (
		searchCode     string
		searchPosition int
		searchAuthor   string
		searchTitle    string
		searchGenre    string
	)
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Combined search; the first provided flag decides the mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body := map[string]any{}
			if cmd.Flags().Changed("code") {
				body["code"] = searchCode
			}
			if cmd.Flags().Changed("position") {
				body["position"] = searchPosition
			}
			if cmd.Flags().Changed("author") {
				body["author"] = searchAuthor
			}
			if cmd.Flags().Changed("title") {
				body["title"] = searchTitle
			}
			if cmd.Flags().Changed("genre") {
				body["genre"] = searchGenre
			}
			return newClient().post("/api/books/search", body)
		},
	}
	searchCmd.Flags().StringVar(&searchCode, "code", "", "copy code")
	searchCmd.Flags().IntVar(&searchPosition, "position", 0, "shelf position")
	searchCmd.Flags().StringVar(&searchAuthor, "author", "", "author")
	searchCmd.Flags().StringVar(&searchTitle, "title", "", "title")
	searchCmd.Flags().StringVar(&searchGenre, "genre", "", "genre")
	cmd.AddCommand(searchCmd)

	var newPosition int
	moveCmd := &cobra.Command{
		Use:   "move <code>",
		Short: "Move a copy to a new position (omit --position to take it off the shelf)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"position": nil}
			if cmd.Flags().Changed("position") {
				body["position"] = newPosition
			}
			return newClient().patch("/api/books/"+url.PathEscape(args[0])+"/position", body)
		},
	}
	moveCmd.Flags().IntVar(&newPosition, "position", 0, "new shelf position")
	cmd.AddCommand(moveCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <code>",
		Short: "Delete one book copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().delete("/api/books/" + url.PathEscape(args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete-all",
		Short: "Delete every book copy",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return newClient().delete("/api/books")
		},
	})

	return cmd
}

func findBookCmd(route, field, short string) *cobra.Command {
	var value string
	cmd := &cobra.Command{
		Use:   route,
		Short: short + " (omit --" + field + " to match unset fields)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := "/api/books/" + route
			if cmd.Flags().Changed(field) {
				path += "?" + field + "=" + url.QueryEscape(value)
			}
			return newClient().get(path)
		},
	}
	cmd.Flags().StringVar(&value, field, "", field+" to match")
	return cmd
}

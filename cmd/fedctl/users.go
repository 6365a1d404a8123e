package main

import (
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/fedstack/federation-registry/internal/users"
	"github.com/fedstack/federation-registry/pkg/pagination"
	"github.com/spf13/cobra"
)

func newUsersCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect registered users",
	}

	cmd.AddCommand(newUsersListCmd(opts))

	return cmd
}

func newUsersListCmd(opts *clientOptions) *cobra.Command {
	var (
		name     string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if name != "" {
				params.Set("name", name)
			}
			if page > 0 {
				params.Set("page", fmt.Sprint(page))
			}
			if pageSize > 0 {
				params.Set("page_size", fmt.Sprint(pageSize))
			}

			path := "/api/users"
			if len(params) > 0 {
				path += "?" + params.Encode()
			}

			var result pagination.PageResult[users.User]
			if err := opts.get(path, &result); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tISSUER")
			for _, u := range result.Data {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Issuer)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("page %d of %d (%d total)\n",
				result.Page.Number, result.Page.TotalPages, result.Page.TotalElements)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by name (contains)")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size")

	return cmd
}

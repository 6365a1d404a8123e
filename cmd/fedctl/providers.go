package main

import (
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/fedstack/federation-registry/internal/providers"
	"github.com/fedstack/federation-registry/pkg/pagination"
	"github.com/spf13/cobra"
)

func newProvidersCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "Inspect and operate resource providers",
	}

	cmd.AddCommand(newProvidersListCmd(opts))
	cmd.AddCommand(newProvidersGetCmd(opts))
	cmd.AddCommand(newProvidersStatusCmd(opts))

	return cmd
}

func newProvidersListCmd(opts *clientOptions) *cobra.Command {
	var (
		status   string
		name     string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if status != "" {
				params.Set("status", status)
			}
			if name != "" {
				params.Set("name", name)
			}
			if page > 0 {
				params.Set("page", fmt.Sprint(page))
			}
			if pageSize > 0 {
				params.Set("page_size", fmt.Sprint(pageSize))
			}

			path := "/api/providers"
			if len(params) > 0 {
				path += "?" + params.Encode()
			}

			var result pagination.PageResult[providers.Provider]
			if err := opts.get(path, &result); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tPUBLIC")
			for _, p := range result.Data {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", p.ID, p.Name, p.Type, p.Status, p.IsPublic)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("page %d of %d (%d total)\n",
				result.Page.Number, result.Page.TotalPages, result.Page.TotalElements)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by lifecycle status")
	cmd.Flags().StringVar(&name, "name", "", "filter by name (contains)")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size")

	return cmd
}

func newProvidersGetCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p providers.Provider
			if err := opts.get("/api/providers/"+args[0], &p); err != nil {
				return err
			}
			return printJSON(p)
		},
	}
}

func newProvidersStatusCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <next>",
		Short: "Apply a lifecycle transition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := providers.ParseStatus(args[1])
			if err != nil {
				return err
			}

			var p providers.Provider
			req := providers.StatusRequest{Status: string(next)}
			if err := opts.post("/api/providers/"+args[0]+"/status", req, &p); err != nil {
				return err
			}

			fmt.Printf("provider %s is now %s\n", p.ID, p.Status)
			return nil
		},
	}
}

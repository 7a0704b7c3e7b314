package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/avatax/avatax"
	"github.com/kbukum/avatax/httpclient/rest"
)

func (a *app) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ping",
		Short:   "Test connectivity and credentials",
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.Ping(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
}

func (a *app) resolveAddressCmd() *cobra.Command {
	var (
		addr     avatax.AddressValidationInfo
		textCase string
		post     bool
	)
	cmd := &cobra.Command{
		Use:     "resolve-address",
		Short:   "Resolve and geocode an address",
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr.TextCase = avatax.TextCase(textCase)
			resolve := a.client.ResolveAddress
			if post {
				resolve = a.client.ResolveAddressPost
			}
			res, err := resolve(cmd.Context(), addr)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
	f := cmd.Flags()
	f.StringVar(&addr.Line1, "line1", "", "first address line")
	f.StringVar(&addr.Line2, "line2", "", "second address line")
	f.StringVar(&addr.Line3, "line3", "", "third address line")
	f.StringVar(&addr.City, "city", "", "city")
	f.StringVar(&addr.Region, "region", "", "state or province code")
	f.StringVar(&addr.PostalCode, "postal-code", "", "postal code")
	f.StringVar(&addr.Country, "country", "", "two-letter country code")
	f.StringVar(&textCase, "text-case", "", `"Upper" or "Mixed"`)
	f.BoolVar(&post, "post", false, "send the address as a JSON body")
	return cmd
}

func (a *app) companiesCmd() *cobra.Command {
	var (
		lo  rest.ListOptions
		all bool
	)
	cmd := &cobra.Command{
		Use:     "companies",
		Short:   "List companies",
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all {
				companies, err := a.client.QueryAllCompanies(cmd.Context(), lo)
				if err != nil {
					return err
				}
				return a.print(companies)
			}
			page, err := a.client.QueryCompanies(cmd.Context(), lo)
			if err != nil {
				return err
			}
			return a.print(page)
		},
	}
	f := cmd.Flags()
	f.StringVar(&lo.Filter, "filter", "", "$filter expression, e.g. \"isActive eq true\"")
	f.StringVar(&lo.Include, "include", "", "$include list")
	f.IntVar(&lo.Top, "top", 0, "page size")
	f.IntVar(&lo.Skip, "skip", 0, "records to skip")
	f.StringVar(&lo.OrderBy, "order-by", "", "$orderBy expression")
	f.BoolVar(&all, "all", false, "follow nextLink and print every record")
	return cmd
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"backoffice/internal/domain"
	"backoffice/internal/search"
	apperrors "backoffice/pkg/errors"
)

func NewProvidersCommand() *cobra.Command {
	var (
		query   string
		filters domain.ProviderFilters
	)

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List providers matching a search and filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := gatewayFrom(cmd.Context())
			if err != nil {
				return err
			}

			providers, err := api.ListProviders(cmd.Context())
			if err != nil {
				return errors.New(apperrors.Message(err))
			}
			visible := search.FilterProviders(providers, query, filters)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), visible)
			}
			return printProviders(cmd.OutOrStdout(), visible)
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "free-text search over name, email, phone and company")
	cmd.Flags().StringVar(&filters.Name, "name", "", "filter on name")
	cmd.Flags().StringVar(&filters.Email, "email", "", "filter on email")
	cmd.Flags().StringVar(&filters.Phone, "phone", "", "filter on phone")
	cmd.Flags().StringVar(&filters.Company, "company", "", "filter on company name")

	return cmd
}

func NewActivitiesCommand() *cobra.Command {
	var (
		query   string
		filters domain.ActivityFilters
	)

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List activities matching a search and filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := gatewayFrom(cmd.Context())
			if err != nil {
				return err
			}

			activities, err := api.ListActivities(cmd.Context())
			if err != nil {
				return errors.New(apperrors.Message(err))
			}
			visible := search.FilterActivities(activities, query, filters)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), visible)
			}
			return printActivities(cmd.OutOrStdout(), visible)
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "free-text search over name, code, type and locations")
	cmd.Flags().StringVar(&filters.Name, "name", "", "filter on name")
	cmd.Flags().StringVar(&filters.Code, "code", "", "filter on code")
	cmd.Flags().StringVar(&filters.Type, "type", "", "filter on type")
	cmd.Flags().StringVar(&filters.Location, "location", "", "filter on activity or departure location")

	return cmd
}

func printProviders(w io.Writer, providers []domain.Provider) error {
	if len(providers) == 0 {
		_, err := fmt.Fprintln(w, "No providers found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NOM\tEMAIL\tTÉLÉPHONE\tSOCIÉTÉ")
	for _, p := range providers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Email, p.Phone, p.Company)
	}
	return tw.Flush()
}

func printActivities(w io.Writer, activities []domain.Activity) error {
	if len(activities) == 0 {
		_, err := fmt.Fprintln(w, "No activities found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNOM\tPRESTATAIRE\tTYPE\tLIEU\tDÉPART\tDURÉE")
	for _, a := range activities {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.Code, a.Name, a.Provider, a.Type, a.ActivityLocation, a.DepartureLocation, a.Duration)
	}
	return tw.Flush()
}

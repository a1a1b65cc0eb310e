package cli

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
)

func newCountriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List countries available in the emission factor table",
		RunE:  runCountries,
	}

	cmd.Flags().String("search", "", "fuzzy-filter the country list")

	return cmd
}

func runCountries(cmd *cobra.Command, _ []string) error {
	store, _, _, err := buildEngine(cmd.Context())
	if err != nil {
		return err
	}

	countries := store.Countries()

	if query, _ := cmd.Flags().GetString("search"); query != "" {
		ranks := fuzzy.RankFindNormalizedFold(query, countries)
		sort.Sort(ranks)
		matched := make([]string, 0, len(ranks))
		for _, r := range ranks {
			matched = append(matched, r.Target)
		}
		countries = matched
	}

	if len(countries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching countries.")
		return nil
	}
	for _, name := range countries {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardgallery/internal/gallery"
)

func newRegionsCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "regions",
		Short:       "List the region codes recognised in filenames",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			regions := gallery.Regions()
			if jsonOutput {
				views := make([]regionView, 0, len(regions))
				for _, r := range regions {
					views = append(views, regionView{
						Code:         r.Code,
						Name:         r.Name,
						Language:     r.Language.String(),
						LanguageName: r.LanguageName(),
						NativeName:   r.NativeLanguageName(),
					})
				}
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(regions))
			for _, r := range regions {
				rows = append(rows, []string{r.Code, r.Name, r.Language.String(), r.LanguageName(), r.NativeLanguageName()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Code", "Region", "Tag", "Language", "Native"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

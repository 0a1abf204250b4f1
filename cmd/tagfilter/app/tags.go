package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTagsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Print the normalized tag patterns of each configured filter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			filters, err := buildFilters(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range filters {
				patterns, ok := patternsOf(f)
				if !ok {
					continue
				}
				fmt.Fprintf(out, "# %s (%d)\n", f.Name(), len(patterns))
				for _, p := range patterns {
					fmt.Fprintln(out, p)
				}
			}
			return nil
		},
	}
}

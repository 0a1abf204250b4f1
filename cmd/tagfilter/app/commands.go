// Package app wires the tagfilter commands.
package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tagfilter/internal/common"
	"tagfilter/internal/config"
	"tagfilter/internal/filter"
	"tagfilter/internal/filter/ja"
	"tagfilter/internal/metrics"
	"tagfilter/internal/tokenizer"
	"tagfilter/internal/types"
)

// NewRootCmd creates the root command with the filter and tags subcommands.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "tagfilter",
		Short:         "Filter Japanese tokens by part-of-speech tags",
		SilenceUsage:  true,
		SilenceErrors: false,
		Long: `tagfilter segments Japanese text (or reads MeCab output) and drops tokens
whose IPADIC part-of-speech hierarchy matches a configured stop-tag list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().String("config", "", "Path to configuration file (YAML, JSON or TOML)")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := v.BindPFlag("config", root.PersistentFlags().Lookup("config")); err != nil {
		common.FAIL("Error binding config flag: %v", err)
	}
	if err := v.BindPFlag("debug", root.PersistentFlags().Lookup("debug")); err != nil {
		common.FAIL("Error binding debug flag: %v", err)
	}

	root.AddCommand(newFilterCmd(v))
	root.AddCommand(newTagsCmd(v))
	return root
}

// loadConfig reads the configuration and switches logging over to it.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	cfg, err := config.Load(v.GetString("config"))
	if err != nil {
		return nil, err
	}

	l, err := common.NewLogger(cfg.Log.Env, cfg.Log.Level)
	if err != nil {
		return nil, common.Args.WithError(err)
	}
	common.SetLogger(l)
	common.SetDebug(cfg.Log.Debug || v.GetBool("debug"))
	return cfg, nil
}

func buildFilters(cfg *config.Config) ([]types.Filter, error) {
	r := make([]types.Filter, 0, len(cfg.Filters))
	for i, fc := range cfg.Filters {
		args, err := fc.ArgsJSON()
		if err != nil {
			return nil, fmt.Errorf("filters[%d]: %w", i, err)
		}
		f, err := filter.New(fc.Kind, args)
		if err != nil {
			return nil, fmt.Errorf("filters[%d] (%s): %w", i, fc.Kind, err)
		}
		r = append(r, f)
	}
	return r, nil
}

func buildTokenizer(cfg *config.Config) (*tokenizer.Tokenizer, error) {
	var seg types.Segmentor
	switch cfg.Segmentor {
	case config.SegmentorKagome:
		k, err := tokenizer.NewKagomeSegmentor()
		if err != nil {
			return nil, fmt.Errorf("failed to load kagome dictionary: %w", err)
		}
		seg = k
	default:
		seg = &tokenizer.MecabSegmentor{}
	}

	filters, err := buildFilters(cfg)
	if err != nil {
		return nil, err
	}

	tz := tokenizer.NewTokenizer(seg)
	for _, f := range filters {
		tz.UseFilter(metrics.Instrument(f))
	}
	return tz, nil
}

func patternsOf(f types.Filter) ([]string, bool) {
	switch t := f.(type) {
	case *ja.StopTagsFilter:
		return t.Config().Tags().Strings(), true
	case *ja.KeepTagsFilter:
		return t.Config().Tags().Strings(), true
	default:
		return nil, false
	}
}

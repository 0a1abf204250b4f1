package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tagfilter/internal/common"
	"tagfilter/internal/metrics"
	"tagfilter/internal/types"
)

type tokenJSON struct {
	Text           string   `json:"text"`
	ByteStart      int      `json:"byte_start"`
	ByteEnd        int      `json:"byte_end"`
	Position       int      `json:"position"`
	PositionLength int      `json:"position_length"`
	Details        []string `json:"details"`
}

func newFilterCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Segment input and print the tokens that survive the configured filters",
		Long: `Reads text from --input (or stdin), segments it with the configured segmentor
and prints the retained tokens. With the mecab segmentor the input must already be
MeCab output ("surface<TAB>features" lines).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, v)
		},
	}
	cmd.Flags().String("input", "", "Input file (default stdin)")
	cmd.Flags().String("format", "text", "Output format: text or json")
	cmd.Flags().Bool("metrics", false, "Log filter counters when done")
	return cmd
}

func runFilter(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return common.Args.Errorf("unknown output format %q", format)
	}

	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		return err
	}

	tz, err := buildTokenizer(cfg)
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	text, err := readInput(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}

	t := time.Now()
	tokens, err := tz.Analyze(text)
	if err != nil {
		return err
	}
	common.DINFO("analyzed %d bytes into %d tokens in %v", len(text), len(tokens), time.Since(t))

	if err := writeTokens(cmd.OutOrStdout(), tokens, format); err != nil {
		return common.Io.WithError(err)
	}

	if on, _ := cmd.Flags().GetBool("metrics"); on {
		logCounters(reg)
	}
	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "" || path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", common.Io.WithError(err)
	}
	return string(b), nil
}

func writeTokens(w io.Writer, tokens []types.Token, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		for _, t := range tokens {
			if err := enc.Encode(tokenJSON(t)); err != nil {
				return err
			}
		}
		return nil
	}

	for _, t := range tokens {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", t.Text, strings.Join(t.Details, ",")); err != nil {
			return err
		}
	}
	return nil
}

func logCounters(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		common.WARN("gather metrics: %v", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			common.INFO("%s{%s} %v", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
}

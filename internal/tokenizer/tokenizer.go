package tokenizer

import (
	"fmt"
	"tagfilter/internal/types"
)

var (
	_ types.Tokenizer = (*Tokenizer)(nil)
	_ types.Segmentor = (*MecabSegmentor)(nil)
	_ types.Segmentor = (*KagomeSegmentor)(nil)
)

// Tokenizer cuts text with its segmentor and runs the filters in order.
type Tokenizer struct {
	filters []types.Filter
	seg     types.Segmentor
}

func NewTokenizer(seg types.Segmentor) *Tokenizer {
	return &Tokenizer{
		filters: make([]types.Filter, 0),
		seg:     seg,
	}
}

func (t *Tokenizer) UseSegmentor(seg types.Segmentor) {
	t.seg = seg
}

func (t *Tokenizer) UseFilter(f types.Filter) {
	t.filters = append(t.filters, f)
}

func (t *Tokenizer) Filters() []types.Filter {
	return t.filters
}

func (t *Tokenizer) Analyze(text string) ([]types.Token, error) {
	seg := t.seg
	if seg == nil {
		seg = &MecabSegmentor{}
	}

	tokens, err := seg.Cut(text)
	if err != nil {
		return nil, err
	}

	for _, f := range t.filters {
		tokens, err = f.Apply(tokens)
		if err != nil {
			return nil, fmt.Errorf("token filter %s: %w", f.Name(), err)
		}
	}
	return tokens, nil
}

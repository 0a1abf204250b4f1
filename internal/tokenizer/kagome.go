package tokenizer

import (
	"tagfilter/internal/types"

	"github.com/ikawaha/kagome-dict/ipa"
	ktokenizer "github.com/ikawaha/kagome/v2/tokenizer"
)

// KagomeSegmentor analyzes raw Japanese text with kagome and the IPA dictionary.
type KagomeSegmentor struct {
	kagome *ktokenizer.Tokenizer
	mode   ktokenizer.TokenizeMode
}

func NewKagomeSegmentor() (*KagomeSegmentor, error) {
	t, err := ktokenizer.New(ipa.Dict(), ktokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KagomeSegmentor{
		kagome: t,
		mode:   ktokenizer.Normal,
	}, nil
}

func (k *KagomeSegmentor) UseSearchMode() {
	k.mode = ktokenizer.Search
}

func (k *KagomeSegmentor) Cut(text string) ([]types.Token, error) {
	tokens := k.kagome.Analyze(text, k.mode)
	r := make([]types.Token, 0, len(tokens))
	for _, token := range tokens {
		r = append(r, types.Token{
			Text:           token.Surface,
			ByteStart:      token.Position,
			ByteEnd:        token.Position + len(token.Surface),
			Position:       len(r),
			PositionLength: 1,
			Details:        token.Features(),
		})
	}
	return r, nil
}

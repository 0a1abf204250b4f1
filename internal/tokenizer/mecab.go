package tokenizer

import (
	"bufio"
	"strings"
	"tagfilter/internal/common"
	"tagfilter/internal/types"
)

const mecabEOS = "EOS"

// MecabSegmentor reads text that was already analyzed by MeCab with an
// IPADIC style dictionary, one "surface\tf1,f2,..." line per morpheme.
// Byte offsets are counted over the concatenated surfaces.
type MecabSegmentor struct {
}

func (m *MecabSegmentor) Cut(text string) ([]types.Token, error) {
	var (
		tokens []types.Token
		offset int
		lineNo int
	)

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || line == mecabEOS {
			continue
		}

		surface, features, ok := strings.Cut(line, "\t")
		if !ok || surface == "" {
			return nil, common.Parse.Errorf("line %d: expected surface<TAB>features, got %q", lineNo, line)
		}

		tokens = append(tokens, types.Token{
			Text:           surface,
			ByteStart:      offset,
			ByteEnd:        offset + len(surface),
			Position:       len(tokens),
			PositionLength: 1,
			Details:        strings.Split(features, ","),
		})
		offset += len(surface)
	}
	if err := sc.Err(); err != nil {
		return nil, common.Io.WithError(err)
	}
	return tokens, nil
}

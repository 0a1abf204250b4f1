package ja

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"tagfilter/internal/common"
	"tagfilter/internal/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ipadicStopTags = `
{
	"tags": [
		"接続詞",
		"助詞",
		"助詞,格助詞",
		"助詞,格助詞,一般",
		"助詞,格助詞,引用",
		"助詞,格助詞,連語",
		"助詞,係助詞",
		"助詞,副助詞",
		"助詞,間投助詞",
		"助詞,並立助詞",
		"助詞,終助詞",
		"助詞,副助詞／並立助詞／終助詞",
		"助詞,連体化",
		"助詞,副詞化",
		"助詞,特殊",
		"助動詞",
		"記号",
		"記号,一般",
		"記号,読点",
		"記号,句点",
		"記号,空白",
		"記号,括弧閉",
		"その他,間投",
		"フィラー",
		"非言語音"
	]
}
`

func newTestToken(text string, start, pos int, details string) types.Token {
	return types.Token{
		Text:           text,
		ByteStart:      start,
		ByteEnd:        start + len(text),
		Position:       pos,
		PositionLength: 1,
		Details:        strings.Split(details, ","),
	}
}

// すもももももももものうち as analyzed with IPADIC.
func sumomoTokens() []types.Token {
	return []types.Token{
		newTestToken("すもも", 0, 0, "名詞,一般,*,*,*,*,すもも,スモモ,スモモ"),
		newTestToken("も", 9, 1, "助詞,係助詞,*,*,*,*,も,モ,モ"),
		newTestToken("もも", 12, 2, "名詞,一般,*,*,*,*,もも,モモ,モモ"),
		newTestToken("も", 18, 3, "助詞,係助詞,*,*,*,*,も,モ,モ"),
		newTestToken("もも", 21, 4, "名詞,一般,*,*,*,*,もも,モモ,モモ"),
		newTestToken("の", 27, 5, "助詞,連体化,*,*,*,*,の,ノ,ノ"),
		newTestToken("うち", 30, 6, "名詞,非自立,副詞可能,*,*,*,うち,ウチ,ウチ"),
	}
}

func texts(tokens []types.Token) []string {
	r := make([]string, 0, len(tokens))
	for _, t := range tokens {
		r = append(r, t.Text)
	}
	return r
}

func TestStopTagsConfigFromJSON(t *testing.T) {
	config, err := StopTagsConfigFromJSON([]byte(ipadicStopTags))
	require.NoError(t, err)
	assert.Equal(t, 25, config.Tags().Len())
	assert.True(t, config.Tags().Contains(Pattern{"助詞", "格助詞", "一般", "*"}))
	assert.True(t, config.Tags().Contains(Pattern{"フィラー", "*", "*", "*"}))
}

func TestStopTagsFilterFromJSON(t *testing.T) {
	f, err := StopTagsFilterFromJSON([]byte(ipadicStopTags))
	require.NoError(t, err)
	assert.Equal(t, "japanese_stop_tags", f.Name())
}

func TestStopTagsConfigCollapse(t *testing.T) {
	one := NewStopTagsConfig([]string{"助詞"})
	dup := NewStopTagsConfig([]string{"助詞", "助詞"})
	assert.Equal(t, one.Tags(), dup.Tags())
	assert.Equal(t, 1, dup.Tags().Len())

	same := NewStopTagsConfig([]string{"助詞,格助詞", "助詞,格助詞", "助詞,格助詞,*", "助詞,格助詞,*,*"})
	assert.Equal(t, []string{"助詞,格助詞,*,*"}, same.Tags().Strings())
}

func TestStopTagsConfigFromJSONMalformed(t *testing.T) {
	cases := map[string]string{
		"missing tags":      `{"stop": ["助詞"]}`,
		"tags not an array": `{"tags": "助詞"}`,
		"tags null":         `{"tags": null}`,
		"element type":      `{"tags": ["助詞", 1]}`,
		"nested element":    `{"tags": [["助詞"]]}`,
		"not an object":     `["助詞"]`,
		"broken json":       `{"tags": [`,
		"empty input":       ``,
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := StopTagsFilterFromJSON([]byte(data))
			assert.Nil(t, f)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrDeserialize), err.Error())
			kind, ok := common.KindOf(err)
			assert.True(t, ok)
			assert.Equal(t, common.Deserialize, kind)
		})
	}
}

func TestStopTagsConfigUnknownFieldsIgnored(t *testing.T) {
	config, err := StopTagsConfigFromJSON([]byte(`{"tags": ["記号"], "comment": "ipadic"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"記号,*,*,*"}, config.Tags().Strings())
}

func TestStopTagsConfigFromYAML(t *testing.T) {
	config, err := StopTagsConfigFromYAML([]byte("tags:\n  - 助詞\n  - 記号,読点\n  - 助詞\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"助詞,*,*,*", "記号,読点,*,*"}, config.Tags().Strings())

	_, err = StopTagsConfigFromYAML([]byte("stop:\n  - 助詞\n"))
	assert.ErrorIs(t, err, common.ErrDeserialize)

	_, err = StopTagsConfigFromYAML([]byte("tags:\n  - {a: b}\n"))
	assert.ErrorIs(t, err, common.ErrDeserialize)
}

func TestStopTagsConfigMarshalJSON(t *testing.T) {
	config := NewStopTagsConfig([]string{"記号", "助詞,係助詞", "助詞"})
	b, err := json.Marshal(config)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags": ["助詞,*,*,*", "助詞,係助詞,*,*", "記号,*,*,*"]}`, string(b))

	again, err := StopTagsConfigFromJSON(b)
	require.NoError(t, err)
	assert.Equal(t, config.Tags(), again.Tags())
}

func TestStopTagsFilterApply(t *testing.T) {
	f := NewStopTagsFilter(NewStopTagsConfig([]string{"助詞", "助詞,係助詞", "助詞,連体化"}))

	tokens, err := f.Apply(sumomoTokens())
	require.NoError(t, err)
	assert.Equal(t, []string{"すもも", "もも", "もも", "うち"}, texts(tokens))
	assert.Equal(t, []int{0, 2, 4, 6}, []int{tokens[0].Position, tokens[1].Position, tokens[2].Position, tokens[3].Position})
	assert.Equal(t, 30, tokens[3].ByteStart)
	assert.Equal(t, 36, tokens[3].ByteEnd)
}

func TestStopTagsFilterApplyIPADIC(t *testing.T) {
	f, err := StopTagsFilterFromJSON([]byte(ipadicStopTags))
	require.NoError(t, err)

	tokens, err := f.Apply(sumomoTokens())
	require.NoError(t, err)
	assert.Len(t, tokens, 4)
	assert.Equal(t, []string{"すもも", "もも", "もも", "うち"}, texts(tokens))
}

func TestStopTagsFilterApplyEmpty(t *testing.T) {
	f := NewStopTagsFilter(NewStopTagsConfig([]string{"助詞"}))

	tokens, err := f.Apply(nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = f.Apply([]types.Token{})
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestStopTagsFilterEmptyStopSet(t *testing.T) {
	f := NewStopTagsFilter(NewStopTagsConfig(nil))
	tokens, err := f.Apply(sumomoTokens())
	require.NoError(t, err)
	assert.Equal(t, sumomoTokens(), tokens)
}

func TestStopTagsFilterPreservesOrder(t *testing.T) {
	f := NewStopTagsFilter(NewStopTagsConfig([]string{"名詞,一般"}))
	in := sumomoTokens()
	tokens, err := f.Apply(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"も", "も", "の", "うち"}, texts(tokens))
	last := -1
	for _, token := range tokens {
		assert.Greater(t, token.Position, last)
		last = token.Position
	}
}

func TestStopTagsFilterExactPatternOnly(t *testing.T) {
	// "名詞" matches only tokens whose pattern is 名詞,*,*,*, not every noun.
	f := NewStopTagsFilter(NewStopTagsConfig([]string{"名詞"}))
	tokens, err := f.Apply(sumomoTokens())
	require.NoError(t, err)
	assert.Len(t, tokens, 7)
}

func TestStopTagsFilterShortDetails(t *testing.T) {
	f := NewStopTagsFilter(NewStopTagsConfig([]string{"UNK", "助詞,係助詞"}))
	in := []types.Token{
		newTestToken("ｘ", 0, 0, "UNK"),
		// fewer than four details: only the first one is matched, so 助詞,係助詞 does not apply
		newTestToken("も", 3, 1, "助詞,係助詞"),
		{Text: "?", ByteStart: 6, ByteEnd: 7, Position: 2, PositionLength: 1},
	}

	tokens, err := f.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"も", "?"}, texts(tokens))
}

func TestStopTagsFilterConcurrentApply(t *testing.T) {
	f, err := StopTagsFilterFromJSON([]byte(ipadicStopTags))
	require.NoError(t, err)

	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens, err := f.Apply(sumomoTokens())
			assert.NoError(t, err)
			assert.Equal(t, []string{"すもも", "もも", "もも", "うち"}, texts(tokens))
		}()
	}
	wg.Wait()
}

package ja

import (
	"tagfilter/internal/common"
	"tagfilter/internal/types"
)

const StopTagsFilterName = "japanese_stop_tags"

type StopTagsConfig struct {
	tags TagSet
}

func NewStopTagsConfig(tags []string) StopTagsConfig {
	return StopTagsConfig{tags: NewTagSet(tags)}
}

func StopTagsConfigFromJSON(data []byte) (StopTagsConfig, error) {
	tags, err := decodeTagsJSON(data)
	if err != nil {
		return StopTagsConfig{}, err
	}
	return NewStopTagsConfig(tags), nil
}

func StopTagsConfigFromYAML(data []byte) (StopTagsConfig, error) {
	tags, err := decodeTagsYAML(data)
	if err != nil {
		return StopTagsConfig{}, err
	}
	return NewStopTagsConfig(tags), nil
}

func (c StopTagsConfig) Tags() TagSet {
	return c.tags
}

func (c StopTagsConfig) MarshalJSON() ([]byte, error) {
	return encodeTags(c.tags)
}

// StopTagsFilter removes tokens with the specified part-of-speech tags.
type StopTagsFilter struct {
	config StopTagsConfig
}

func NewStopTagsFilter(config StopTagsConfig) *StopTagsFilter {
	common.DINFO("%s: %d stop patterns", StopTagsFilterName, config.tags.Len())
	return &StopTagsFilter{config: config}
}

func StopTagsFilterFromJSON(data []byte) (*StopTagsFilter, error) {
	config, err := StopTagsConfigFromJSON(data)
	if err != nil {
		return nil, err
	}
	return NewStopTagsFilter(config), nil
}

func (f *StopTagsFilter) Name() string {
	return StopTagsFilterName
}

func (f *StopTagsFilter) Config() StopTagsConfig {
	return f.config
}

func (f *StopTagsFilter) Apply(tokens []types.Token) ([]types.Token, error) {
	r := make([]types.Token, 0, len(tokens))
	for _, token := range tokens {
		if !f.config.tags.Contains(TokenPattern(token.Details)) {
			r = append(r, token)
		}
	}
	return r, nil
}

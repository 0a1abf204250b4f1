package ja

import (
	"tagfilter/internal/common"
	"tagfilter/internal/types"
)

const KeepTagsFilterName = "japanese_keep_tags"

type KeepTagsConfig struct {
	tags TagSet
}

func NewKeepTagsConfig(tags []string) KeepTagsConfig {
	return KeepTagsConfig{tags: NewTagSet(tags)}
}

func KeepTagsConfigFromJSON(data []byte) (KeepTagsConfig, error) {
	tags, err := decodeTagsJSON(data)
	if err != nil {
		return KeepTagsConfig{}, err
	}
	return NewKeepTagsConfig(tags), nil
}

func (c KeepTagsConfig) Tags() TagSet {
	return c.tags
}

func (c KeepTagsConfig) MarshalJSON() ([]byte, error) {
	return encodeTags(c.tags)
}

// KeepTagsFilter keeps only tokens with the specified part-of-speech tags.
type KeepTagsFilter struct {
	config KeepTagsConfig
}

func NewKeepTagsFilter(config KeepTagsConfig) *KeepTagsFilter {
	common.DINFO("%s: %d keep patterns", KeepTagsFilterName, config.tags.Len())
	return &KeepTagsFilter{config: config}
}

func KeepTagsFilterFromJSON(data []byte) (*KeepTagsFilter, error) {
	config, err := KeepTagsConfigFromJSON(data)
	if err != nil {
		return nil, err
	}
	return NewKeepTagsFilter(config), nil
}

func (f *KeepTagsFilter) Name() string {
	return KeepTagsFilterName
}

func (f *KeepTagsFilter) Config() KeepTagsConfig {
	return f.config
}

func (f *KeepTagsFilter) Apply(tokens []types.Token) ([]types.Token, error) {
	r := make([]types.Token, 0, len(tokens))
	for _, token := range tokens {
		if f.config.tags.Contains(TokenPattern(token.Details)) {
			r = append(r, token)
		}
	}
	return r, nil
}

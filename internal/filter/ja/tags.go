package ja

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"tagfilter/internal/common"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// TagSet is a set of normalized patterns. It is never written after construction.
type TagSet map[Pattern]struct{}

func NewTagSet(raw []string) TagSet {
	s := make(TagSet, len(raw))
	for _, tag := range raw {
		s[ParsePattern(tag)] = struct{}{}
	}
	return s
}

func (s TagSet) Contains(p Pattern) bool {
	_, ok := s[p]
	return ok
}

func (s TagSet) Len() int {
	return len(s)
}

// Strings returns the joined patterns in sorted order.
func (s TagSet) Strings() []string {
	r := make([]string, 0, len(s))
	for p := range s {
		r = append(r, p.String())
	}
	sort.Strings(r)
	return r
}

const tagsSchemaURL = "tags.schema.json"

const tagsSchemaDoc = `{
	"type": "object",
	"required": ["tags"],
	"properties": {
		"tags": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

var tagsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(tagsSchemaDoc))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(tagsSchemaURL, doc); err != nil {
		return nil, err
	}
	return c.Compile(tagsSchemaURL)
})

type tagsDocument struct {
	Tags *[]string `json:"tags" yaml:"tags"`
}

// decodeTagsJSON validates data against the {"tags": [string...]} shape
// before decoding it. Every failure is a Deserialize error.
func decodeTagsJSON(data []byte) ([]string, error) {
	sch, err := tagsSchema()
	if err != nil {
		return nil, common.Deserialize.WithError(err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, common.Deserialize.WithError(err)
	}
	if err := sch.Validate(inst); err != nil {
		return nil, common.Deserialize.WithError(err)
	}

	var doc tagsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, common.Deserialize.WithError(err)
	}
	return *doc.Tags, nil
}

func decodeTagsYAML(data []byte) ([]string, error) {
	var doc tagsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, common.Deserialize.WithError(err)
	}
	if doc.Tags == nil {
		return nil, common.Deserialize.WithError(errors.New("missing field `tags`"))
	}
	return *doc.Tags, nil
}

func encodeTags(s TagSet) ([]byte, error) {
	return json.Marshal(struct {
		Tags []string `json:"tags"`
	}{Tags: s.Strings()})
}

package filter

import (
	"sort"
	"sync"
	"tagfilter/internal/cache"
	"tagfilter/internal/common"
	"tagfilter/internal/filter/ja"
	"tagfilter/internal/types"
)

// Builder builds a filter from its JSON arguments.
type Builder func(args []byte) (types.Filter, error)

var (
	mu       sync.RWMutex
	builders = map[string]Builder{}
	built    = cache.Default[types.Filter](64)
)

func init() {
	Register(ja.StopTagsFilterName, func(args []byte) (types.Filter, error) {
		f, err := ja.StopTagsFilterFromJSON(args)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
	Register(ja.KeepTagsFilterName, func(args []byte) (types.Filter, error) {
		f, err := ja.KeepTagsFilterFromJSON(args)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}

func Register(name string, b Builder) {
	mu.Lock()
	defer mu.Unlock()
	builders[name] = b
}

func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	r := make([]string, 0, len(builders))
	for k := range builders {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// New returns the filter registered under name. Filters are immutable, so a
// filter already built from identical args is shared.
func New(name string, args []byte) (types.Filter, error) {
	mu.RLock()
	b, ok := builders[name]
	mu.RUnlock()
	if !ok {
		return nil, common.Args.Errorf("unsupported token filter %q", name)
	}

	key := common.MergeString(name, common.Fingerprint(args))
	if f, ok := built.Get(key); ok {
		common.DINFO("token filter %s loaded from cache", name)
		return f, nil
	}

	f, err := b(args)
	if err != nil {
		return nil, err
	}
	built.Put(key, f)
	return f, nil
}

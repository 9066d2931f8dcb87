package cache

import "sync"

// memoryCache is a process-local Cache backed by a sync.Map, the default
// backend with zero external dependencies — grounded on the teacher's
// separate-lock-per-concern discipline in core.Graph, simplified here to a
// single map since there is only one concern (the memoized result set).
type memoryCache struct {
	entries sync.Map // string -> []string
}

// NewMemory returns a Cache that lives only for the lifetime of the
// process. Safe for concurrent use.
func NewMemory() Cache {
	return &memoryCache{}
}

// Get implements Cache.
func (c *memoryCache) Get(key string) ([]string, bool, error) {
	v, ok := c.entries.Load(key)
	if !ok {
		return nil, false, nil
	}
	survivors := v.([]string)
	out := append([]string(nil), survivors...)
	return out, true, nil
}

// Set implements Cache.
func (c *memoryCache) Set(key string, survivors []string) error {
	cp := append([]string(nil), survivors...)
	c.entries.Store(key, cp)
	return nil
}

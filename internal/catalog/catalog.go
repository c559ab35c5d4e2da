// Package catalog holds the food catalog: an insertion-ordered mapping from
// item name to its descriptive tags, plus the loaders that build one from a
// text file, the SQLite store, or the built-in data.
package catalog

// Entry is a single food item and its tags. Tag order is preserved and
// duplicates are kept as authored.
type Entry struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// HasTag reports whether tag is one of the entry's tags.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Catalog is an immutable, insertion-ordered set of entries keyed by name.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog from entries. A repeated name replaces the earlier
// tags but keeps the position of its first occurrence.
func New(entries ...Entry) *Catalog {
	c := &Catalog{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		c.put(e)
	}
	return c
}

func (c *Catalog) put(e Entry) {
	tags := make([]string, len(e.Tags))
	copy(tags, e.Tags)
	if i, ok := c.index[e.Name]; ok {
		c.entries[i].Tags = tags
		return
	}
	c.index[e.Name] = len(c.entries)
	c.entries = append(c.entries, Entry{Name: e.Name, Tags: tags})
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// At returns the i-th entry in catalog order.
func (c *Catalog) At(i int) Entry {
	return cloneEntry(c.entries[i])
}

// Names returns the item names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Name
	}
	return out
}

// Get looks up an item by its exact name.
func (c *Catalog) Get(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Entry{}, false
	}
	return cloneEntry(c.entries[i]), true
}

// Tags returns the distinct tags used by the catalog in first-seen order.
func (c *Catalog) Tags() []string {
	if c == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, e := range c.entries {
		for _, t := range e.Tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// TagCounts returns how many items carry each tag. An item listing the same
// tag twice is counted once.
func (c *Catalog) TagCounts() map[string]int {
	counts := map[string]int{}
	if c == nil {
		return counts
	}
	for _, e := range c.entries {
		seen := map[string]bool{}
		for _, t := range e.Tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			counts[t]++
		}
	}
	return counts
}

func cloneEntry(e Entry) Entry {
	tags := make([]string, len(e.Tags))
	copy(tags, e.Tags)
	return Entry{Name: e.Name, Tags: tags}
}

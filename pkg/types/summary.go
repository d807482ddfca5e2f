package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContentSummary is a categorized inventory derived from an archive
// manifest: category name to ordered set of item names. Insertion order is
// preserved for both categories and items, and duplicate items within a
// category are suppressed (first occurrence wins).
type ContentSummary struct {
	order []string
	items map[string][]string
}

// NewContentSummary returns an empty summary.
func NewContentSummary() ContentSummary {
	return ContentSummary{items: make(map[string][]string)}
}

// Add appends item to category, creating the category on first use.
// Duplicate items are ignored.
func (c *ContentSummary) Add(category, item string) {
	if c.items == nil {
		c.items = make(map[string][]string)
	}
	existing, ok := c.items[category]
	if !ok {
		c.order = append(c.order, category)
	}
	for _, it := range existing {
		if it == item {
			return
		}
	}
	c.items[category] = append(existing, item)
}

// Replace sets the items of category wholesale, preserving the category's
// position if it already exists.
func (c *ContentSummary) Replace(category string, items []string) {
	if c.items == nil {
		c.items = make(map[string][]string)
	}
	if _, ok := c.items[category]; !ok {
		c.order = append(c.order, category)
	}
	c.items[category] = append([]string(nil), items...)
}

// Categories returns the category names in insertion order.
func (c ContentSummary) Categories() []string {
	return append([]string(nil), c.order...)
}

// Items returns the items of category in insertion order, or nil if the
// category does not exist.
func (c ContentSummary) Items(category string) []string {
	return append([]string(nil), c.items[category]...)
}

// Len returns the number of categories.
func (c ContentSummary) Len() int {
	return len(c.order)
}

// Clone returns a deep copy.
func (c ContentSummary) Clone() ContentSummary {
	out := NewContentSummary()
	for _, cat := range c.order {
		out.Replace(cat, c.items[cat])
	}
	return out
}

// MarshalJSON encodes the summary as a JSON object whose keys appear in
// insertion order. A plain map would lose the ordering.
func (c ContentSummary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.items[cat])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving its key order.
func (c *ContentSummary) UnmarshalJSON(data []byte) error {
	*c = NewContentSummary()
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("content summary: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var items []string
		if err := dec.Decode(&items); err != nil {
			return err
		}
		c.Replace(key, items)
	}
	// closing brace
	_, err = dec.Token()
	return err
}

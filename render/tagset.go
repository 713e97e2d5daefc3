package render

import (
	"hash/fnv"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// TagSet assigns every tag a stable colour. Tags differing only in case or
// surrounding space share a colour.
type TagSet struct {
	mu     sync.Mutex
	colors map[string]colorful.Color
}

func NewTagSet() *TagSet {
	return &TagSet{
		colors: make(map[string]colorful.Color),
	}
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func (ts *TagSet) HexColor(tag string) string {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	normTag := normalizeTag(tag)
	c, ok := ts.colors[normTag]
	if !ok {
		h := fnv.New32a()
		_, _ = h.Write([]byte(normTag))
		c = colorful.Hsv(float64(h.Sum32()%360), 0.55, 0.85)
		ts.colors[normTag] = c
	}

	return c.Hex()
}

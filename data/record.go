package data

import (
	"encoding/json"
	"time"

	"github.com/hyperion-dev/hyperion-site/route"
	"github.com/hyperion-dev/hyperion-site/util/dates"
)

// Record is the JSON form of a post without its body.
type Record struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Date           JSONDate `json:"date"`
	Author         string   `json:"author,omitempty"`
	Summary        string   `json:"summary"`
	Tags           []string `json:"tags"`
	Hash           string   `json:"hash"`
	ReadingMinutes int      `json:"readingMinutes"`
}

func (p *Post) Record() Record {
	return Record{
		Slug:           p.Slug,
		Title:          p.Title,
		Date:           JSONDate(p.Date),
		Author:         p.Author,
		Summary:        p.Summary,
		Tags:           p.CopyTags(),
		Hash:           route.Post(p.Slug).Hash(),
		ReadingMinutes: p.ReadingMinutes(),
	}
}

func Records(posts []*Post) []Record {
	records := make([]Record, 0, len(posts))
	for _, p := range posts {
		records = append(records, p.Record())
	}

	return records
}

type JSONDate time.Time

func (j JSONDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(dates.DateString(time.Time(j)))
}

func (j *JSONDate) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}

	t, err := time.Parse(dates.Layout, s)
	if err != nil {
		return err
	}

	*j = JSONDate(t)
	return nil
}

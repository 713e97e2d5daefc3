package render

import (
	"time"

	"github.com/hyperion-dev/hyperion-site/data"
)

// PostGroup collects consecutive posts published in the same month.
type PostGroup struct {
	Posts []*data.Post
	Month time.Time
}

func firstDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()

	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// MakePostGroups groups posts by month without reordering them.
func MakePostGroups(posts []*data.Post) []PostGroup {
	if len(posts) == 0 {
		return nil
	}

	groups := []PostGroup{
		{
			Month: firstDayOfMonth(posts[0].Date),
		},
	}

	ci := 0
	for _, post := range posts {
		ym := firstDayOfMonth(post.Date)
		if !ym.Equal(groups[ci].Month) {
			groups = append(
				groups,
				PostGroup{
					Month: ym,
				},
			)
			ci++
		}

		groups[ci].Posts = append(groups[ci].Posts, post)
	}

	return groups
}

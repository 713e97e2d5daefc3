package building

import (
	"sort"

	"github.com/hyperion-dev/hyperion-site/data/tagfilter"
	"github.com/hyperion-dev/hyperion-site/route"
)

// viewJob is one pre-rendered view fragment.
type viewJob struct {
	File      string
	Route     route.Route
	Selection tagfilter.Selection
}

// ViewSet collects the view fragments of a build, keyed by output file.
type ViewSet struct {
	byFile map[string]viewJob
}

func NewViewSet() *ViewSet {
	return &ViewSet{
		byFile: make(map[string]viewJob),
	}
}

func (s *ViewSet) Add(file string, r route.Route, sel tagfilter.Selection) {
	s.byFile[file] = viewJob{File: file, Route: r, Selection: sel}
}

// ForEach visits the jobs ordered by file name.
func (s *ViewSet) ForEach(f func(viewJob)) {
	files := make([]string, 0, len(s.byFile))
	for file := range s.byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		f(s.byFile[file])
	}
}

func (s *ViewSet) Len() int {
	return len(s.byFile)
}

// tagSubsets lists every non-empty subset of tags.
func tagSubsets(tags []string) []tagfilter.Selection {
	n := len(tags)
	subsets := make([]tagfilter.Selection, 0, (1<<n)-1)

	for mask := 1; mask < 1<<n; mask++ {
		var subset []string
		for i, tag := range tags {
			if mask&(1<<i) != 0 {
				subset = append(subset, tag)
			}
		}
		subsets = append(subsets, tagfilter.Select(subset...))
	}

	return subsets
}

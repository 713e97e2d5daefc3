package yamlblock

import "github.com/yuin/goldmark/parser"

var sourcePathKey = parser.NewContextKey()

// SetSourcePath records the path of the markdown file being converted so
// directives can report it.
func SetSourcePath(pc parser.Context, path string) {
	pc.Set(sourcePathKey, path)
}

func SourcePath(pc parser.Context) (string, bool) {
	path, ok := pc.Get(sourcePathKey).(string)
	return path, ok
}

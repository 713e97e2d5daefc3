package building

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hyperion-dev/hyperion-site/data"
)

const (
	manifestFileName = "views/manifest.json"
	postsFileName    = "api/posts.json"
)

// Manifest tells the shell script which pre-rendered fragment belongs to a
// route. Views is keyed by canonical hash, Posts by slug and Filters by the
// comma-joined tag selection of the blog index.
type Manifest struct {
	Views    map[string]string `json:"views"`
	Posts    map[string]string `json:"posts"`
	Filters  map[string]string `json:"filters"`
	NotFound string            `json:"notFound"`
}

func newManifest() *Manifest {
	return &Manifest{
		Views:   make(map[string]string),
		Posts:   make(map[string]string),
		Filters: make(map[string]string),
	}
}

func readManifest(buildDirectory string) (manifest Manifest, err error) {
	payloadBytes, err := os.ReadFile(filepath.Join(buildDirectory, filepath.FromSlash(manifestFileName)))
	if err != nil {
		return
	}

	err = json.Unmarshal(payloadBytes, &manifest)
	return
}

func writeManifest(state *buildState) error {
	jsonBytes, err := json.MarshalIndent(state.manifest, "", "  ")
	if err != nil {
		return err
	}

	return state.WriteFile(manifestFileName, jsonBytes)
}

func writePostsFile(state *buildState) error {
	jsonBytes, err := json.MarshalIndent(data.Records(state.content.Store.Posts()), "", "  ")
	if err != nil {
		return err
	}

	return state.WriteFile(postsFileName, jsonBytes)
}

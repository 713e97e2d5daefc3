package building

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"

	"github.com/hyperion-dev/hyperion-site/data/tagfilter"
	"github.com/hyperion-dev/hyperion-site/filesystem"
	"github.com/hyperion-dev/hyperion-site/images"
	"github.com/hyperion-dev/hyperion-site/render"
	"github.com/hyperion-dev/hyperion-site/res"
	"github.com/hyperion-dev/hyperion-site/route"
	"github.com/hyperion-dev/hyperion-site/site"
	"go.uber.org/zap"
)

var ErrTooManyTags = errors.New("too many tags to pre-render every filter")

var fileNameNormalizationPattern = regexp.MustCompile("[^a-z0-9-]")

func normalizeFileName(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return fileNameNormalizationPattern.ReplaceAllString(s, "_")
}

type Filenamer struct {
}

func (f Filenamer) ViewFile(r route.Route) string {
	switch r.Name() {
	case route.Apps:
		return "views/apps.html"
	case route.Contact:
		return "views/contact.html"
	case route.BlogIndex:
		return "views/blog.html"
	case route.BlogPost:
		slug, _ := r.Slug()
		return fmt.Sprintf("views/posts/%s.html", normalizeFileName(slug))
	default:
		return "views/home.html"
	}
}

func (f Filenamer) FilterFile(n int) string {
	return fmt.Sprintf("views/blog/filter-%03d.html", n)
}

func (f Filenamer) NotFoundFile() string {
	return "views/notfound.html"
}

type Options struct {
	Clean            bool
	ContentDirectory string
	BuildDirectory   string
	MaxFilterTags    int
	Logo             string
}

// Build writes the shell page, every view fragment and the static assets to
// the build directory.
func Build(content *site.Content, opts Options, logger *zap.Logger) error {
	if err := filesystem.CreateDirectoryIfNotExists(opts.BuildDirectory); err != nil {
		return fmt.Errorf("could not ensure build directory: %w", err)
	}

	if !opts.Clean && upToDate(opts, logger) {
		logger.Info("nothing to do", zap.String("directory", opts.BuildDirectory))
		return nil
	}

	vocabulary := tagfilter.Vocabulary(content.Store.Posts())
	if len(vocabulary) > opts.MaxFilterTags {
		return fmt.Errorf("%w: %d tags, at most %d", ErrTooManyTags, len(vocabulary), opts.MaxFilterTags)
	}

	state := &buildState{
		Options:   opts,
		content:   content,
		manifest:  newManifest(),
		filenamer: Filenamer{},
		logger:    logger,
	}

	views := collectViews(state, vocabulary)

	if err := writeShellFile(state); err != nil {
		return err
	}

	if err := processViews(state, views); err != nil {
		return err
	}

	if err := writeManifest(state); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if err := writePostsFile(state); err != nil {
		return fmt.Errorf("write posts: %w", err)
	}

	staticDirectory := filepath.Join(state.BuildDirectory, res.StaticDirectory)
	if err := filesystem.InstallFS(res.Static, res.StaticDirectory, staticDirectory, logger); err != nil {
		return fmt.Errorf("installation of static files failed: %w", err)
	}

	if err := writeIcons(state); err != nil {
		return err
	}

	logger.Info("done",
		zap.String("directory", opts.BuildDirectory),
		zap.Int("views", views.Len()),
		zap.Int("filters", len(state.manifest.Filters)),
	)

	return nil
}

// upToDate reports whether the last build is newer than every file of the
// content directory. Embedded content is always rebuilt.
func upToDate(opts Options, logger *zap.Logger) bool {
	if opts.ContentDirectory == "" {
		return false
	}

	if _, err := readManifest(opts.BuildDirectory); err != nil {
		logger.Debug("no previous build", zap.Error(err))
		return false
	}

	contentModTime, err := filesystem.FullSubtreeModifiedDate(opts.ContentDirectory)
	if err != nil {
		return false
	}

	manifestModTime, err := filesystem.FileModifiedTime(filepath.Join(opts.BuildDirectory, filepath.FromSlash(manifestFileName)))
	if err != nil {
		return false
	}

	return !manifestModTime.Before(contentModTime)
}

type buildState struct {
	Options
	content   *site.Content
	manifest  *Manifest
	filenamer Filenamer
	logger    *zap.Logger
}

// WriteFile writes a file at the given path interpreted relative to the build directory.
func (state *buildState) WriteFile(path string, content []byte) error {
	return filesystem.WriteFile(state.BuildDirectory, path, content)
}

func collectViews(state *buildState, vocabulary []string) *ViewSet {
	views := NewViewSet()
	f := state.filenamer

	for _, name := range []route.Name{route.Home, route.Apps, route.Contact, route.BlogIndex} {
		r := route.Of(name)
		file := f.ViewFile(r)
		views.Add(file, r, tagfilter.Clear())
		state.manifest.Views[r.Hash()] = file
	}

	for _, post := range state.content.Store.Posts() {
		r := route.Post(post.Slug)
		file := f.ViewFile(r)
		views.Add(file, r, tagfilter.Clear())
		state.manifest.Posts[post.Slug] = file
	}

	notFound := f.NotFoundFile()
	views.Add(notFound, route.Post(""), tagfilter.Clear())
	state.manifest.NotFound = notFound

	for i, sel := range tagSubsets(vocabulary) {
		file := f.FilterFile(i + 1)
		views.Add(file, route.Of(route.BlogIndex), sel)
		state.manifest.Filters[render.JoinTags(sel)] = file
	}

	return views
}

func writeShellFile(state *buildState) error {
	var buf bytes.Buffer
	if err := site.RenderShell(&buf, state.content, site.StaticMode); err != nil {
		return err
	}

	if err := state.WriteFile("index.html", buf.Bytes()); err != nil {
		return fmt.Errorf("could not write index file: %w", err)
	}

	return nil
}

func processViews(state *buildState, views *ViewSet) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	jobs := make(chan viewJob)

	for n := runtime.NumCPU(); n > 0; n-- {
		wg.Add(1)
		go func(jobs <-chan viewJob) {
			defer wg.Done()
			for job := range jobs {
				if err := writeViewFile(state, job); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}
		}(jobs)
	}

	views.ForEach(func(job viewJob) {
		jobs <- job
	})
	close(jobs)

	wg.Wait()

	return errors.Join(errs...)
}

func writeViewFile(state *buildState, job viewJob) error {
	view := site.BuildView(state.content, job.Route, job.Selection)

	var buf bytes.Buffer
	if err := site.RenderView(&buf, state.content.Templates, view); err != nil {
		return fmt.Errorf("render %s: %w", job.File, err)
	}

	if err := state.WriteFile(job.File, buf.Bytes()); err != nil {
		return fmt.Errorf("could not write view file: %w", err)
	}

	state.logger.Debug("rendered view", zap.String("file", job.File), zap.Stringer("route", job.Route))

	return nil
}

func writeIcons(state *buildState) error {
	logo, err := images.LoadLogo(state.Logo)
	if err != nil {
		return err
	}

	icons, err := images.RenderIcons(logo, images.DefaultIcons())
	if err != nil {
		return err
	}

	for name, content := range icons {
		if err := state.WriteFile(res.StaticDirectory+"/"+name, content); err != nil {
			return fmt.Errorf("could not write icon: %w", err)
		}
	}

	return nil
}

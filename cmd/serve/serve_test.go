package serve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hyperion-dev/hyperion-site/config"
	"github.com/hyperion-dev/hyperion-site/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.SetDefaults()
	goleak.VerifyTestMain(m)
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	content, err := site.LoadContent()
	require.NoError(t, err)

	assets, err := newAssetMap("")
	require.NoError(t, err)

	engine, err := NewEngine(content, assets, zap.NewNop())
	require.NoError(t, err)

	return engine
}

func get(t *testing.T, engine *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func postForm(t *testing.T, engine *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestServeShell(t *testing.T) {
	w := get(t, newTestEngine(t), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-mode="server"`)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestServeView(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name   string
		hash   string
		status int
		want   string
	}{
		{"home", "", http.StatusOK, `id="services"`},
		{"apps", "apps", http.StatusOK, `data-anchor="logiquiz"`},
		{"contact", "#contact", http.StatusOK, `data-anchor="contact"`},
		{"unknown", "whatever", http.StatusOK, `data-anchor=""`},
		{"blog", "/blog", http.StatusOK, "view-blog"},
		{"post", "/blog/cscp-study-guide", http.StatusOK, "A practical CSCP study guide"},
		{"missing post", "/blog/does-not-exist", http.StatusNotFound, `href="#/blog"`},
		{"hash inside slug", "/blog/a#b", http.StatusNotFound, "There is no post called"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, engine, "/view?hash="+url.QueryEscape(tt.hash))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestServeViewFiltersBlogIndex(t *testing.T) {
	engine := newTestEngine(t)

	all := get(t, engine, "/view?hash=%2Fblog")
	filtered := get(t, engine, "/view?hash=%2Fblog&tag=Design")

	assert.NotContains(t, all.Body.String(), "chip-tag active")
	assert.Contains(t, filtered.Body.String(), "chip-tag active")
	assert.Contains(t, filtered.Body.String(), "Designing Logiquiz")
	assert.NotContains(t, filtered.Body.String(), "CPIM exam")
}

func TestServeRoute(t *testing.T) {
	w := get(t, newTestEngine(t), "/api/route?hash="+url.QueryEscape("#/blog/foo%20bar"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"blogPost","slug":"foo bar","hash":"/blog/foo%20bar"}`, w.Body.String())
}

func TestServePosts(t *testing.T) {
	engine := newTestEngine(t)

	var all, cscp []map[string]interface{}
	require.NoError(t, json.Unmarshal(get(t, engine, "/api/posts").Body.Bytes(), &all))
	require.NoError(t, json.Unmarshal(get(t, engine, "/api/posts?tag=CSCP").Body.Bytes(), &cscp))

	assert.Len(t, all, 5)
	assert.Len(t, cscp, 2)
	for _, p := range cscp {
		assert.Contains(t, p["tags"], "CSCP")
	}
}

func TestServePost(t *testing.T) {
	engine := newTestEngine(t)

	w := get(t, engine, "/api/posts/cpim-exam-tips")
	require.Equal(t, http.StatusOK, w.Code)

	var post postPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "cpim-exam-tips", post.Slug)
	assert.NotEmpty(t, post.HTML)

	assert.Equal(t, http.StatusNotFound, get(t, engine, "/api/posts/nope").Code)
}

func TestServeTags(t *testing.T) {
	w := get(t, newTestEngine(t), "/api/tags")
	require.Equal(t, http.StatusOK, w.Code)

	var tags []tagPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	require.NotEmpty(t, tags)

	for _, tag := range tags {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, tag.Color)
		assert.Positive(t, tag.Posts)
	}
}

func TestServeContact(t *testing.T) {
	engine := newTestEngine(t)

	w := postForm(t, engine, "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Build me an app"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t,
		"mailto:contact@hyperion.dev?subject=Project%20Inquiry&body=New%20project%20inquiry%0AName%3A%20Ada%0AEmail%3A%20ada%40example.com%0AMessage%3A%20Build%20me%20an%20app",
		w.Header().Get("Location"),
	)

	w = postForm(t, engine, "/contact", url.Values{"name": {"Ada"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeBeta(t *testing.T) {
	w := postForm(t, newTestEngine(t), "/beta", url.Values{
		"name":  {"Ada"},
		"email": {"ada@example.com"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "mailto:contact@hyperion.dev?subject=Logiquiz%20Beta%20Request&body="))
}

func TestServeStatic(t *testing.T) {
	engine := newTestEngine(t)

	css := get(t, engine, "/static/site.css")
	assert.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Body.String(), ".chip-tag.active")

	icon := get(t, engine, "/static/favicon-32.png")
	assert.Equal(t, http.StatusOK, icon.Code)
	assert.Equal(t, "image/png", icon.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusNotFound, get(t, engine, "/static/missing.txt").Code)
}

func TestRequestIDIsKept(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	req.Header.Set(requestIDHeader, "6f1c2b1e-6d8c-4f3a-9d43-7f3f0d3c2a11")

	w := httptest.NewRecorder()
	newTestEngine(t).ServeHTTP(w, req)

	assert.Equal(t, "6f1c2b1e-6d8c-4f3a-9d43-7f3f0d3c2a11", w.Header().Get(requestIDHeader))
}

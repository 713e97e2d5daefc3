package serve

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyperion-dev/hyperion-site/data"
	"github.com/hyperion-dev/hyperion-site/data/tagfilter"
	"github.com/hyperion-dev/hyperion-site/route"
)

type tagPayload struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Posts int    `json:"posts"`
}

type postPayload struct {
	data.Record
	HTML string `json:"html"`
}

func (api *serveAPI) ServeRoute(c *gin.Context) {
	c.JSON(http.StatusOK, route.Parse(route.Fragment(c.Query("hash"))))
}

// ServePosts lists the posts visible under the selection given by the tag
// query parameters.
func (api *serveAPI) ServePosts(c *gin.Context) {
	sel := tagfilter.ParseSelection(c.QueryArray("tag"))
	visible := tagfilter.VisiblePosts(api.content.Store.Posts(), sel)

	c.JSON(http.StatusOK, data.Records(visible))
}

func (api *serveAPI) ServePost(c *gin.Context) {
	post, ok := api.content.Store.PostBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, postPayload{
		Record: post.Record(),
		HTML:   string(post.Content()),
	})
}

func (api *serveAPI) ServeTags(c *gin.Context) {
	posts := api.content.Store.Posts()

	tags := []tagPayload{}
	for _, name := range tagfilter.Vocabulary(posts) {
		tags = append(tags, tagPayload{
			Name:  name,
			Color: api.tagSet.HexColor(name),
			Posts: len(tagfilter.VisiblePosts(posts, tagfilter.Select(name))),
		})
	}

	c.JSON(http.StatusOK, tags)
}

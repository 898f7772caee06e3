package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type routeDoc struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Public bool   `json:"public"`
}

type apiDocs struct {
	Title  string     `json:"title"`
	Routes []routeDoc `json:"routes"`
}

// APIDocs lists the registered routes and whether each one is reachable
// without a token.
func (h *HandlerSet) APIDocs(c *gin.Context) {
	var routes gin.RoutesInfo
	if h.routes != nil {
		routes = h.routes()
	}

	docs := apiDocs{Title: "carrental", Routes: make([]routeDoc, 0, len(routes))}
	for _, r := range routes {
		docs.Routes = append(docs.Routes, routeDoc{
			Method: r.Method,
			Path:   r.Path,
			Public: h.public != nil && h.public.Match(r.Path),
		})
	}
	sort.Slice(docs.Routes, func(i, j int) bool {
		if docs.Routes[i].Path != docs.Routes[j].Path {
			return docs.Routes[i].Path < docs.Routes[j].Path
		}
		return docs.Routes[i].Method < docs.Routes[j].Method
	})

	c.JSON(http.StatusOK, docs)
}

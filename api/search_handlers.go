package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-simplified-search/internal/errors"
	"github.com/gcbaptista/go-simplified-search/model"
	"github.com/gcbaptista/go-simplified-search/services"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query  string   `json:"query"`
	Fields []string `json:"fields,omitempty"` // Optional: document fields to search
	Limit  int      `json:"limit,omitempty"`  // Optional: maximum number of hits
}

// ItemsSearchRequest searches items posted together with the query.
type ItemsSearchRequest struct {
	SearchRequest
	Items []model.Document `json:"items"`
}

// MultiSearchRequest represents the JSON request for multi-search
type MultiSearchRequest struct {
	Queries []NamedSearchRequest `json:"queries"`
}

// NamedSearchRequest represents a single named search query in the request
type NamedSearchRequest struct {
	Name       string   `json:"name"`
	Collection string   `json:"collection"`
	Query      string   `json:"query"`
	Fields     []string `json:"fields,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

// SearchHandler handles search requests to a collection.
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()
	name := c.Param("name")

	accessor, err := api.engine.GetCollection(name)
	if err != nil {
		if errors.Is(err, internalErrors.ErrCollectionNotFound) {
			SendCollectionNotFoundError(c, name)
			return
		}
		SendInternalError(c, "get collection", err)
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	if result := ValidateSearchRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	candidates := accessor.DocumentCount()
	results, err := accessor.Search(c.Request.Context(), req.toQuery())
	if err != nil {
		SendSearchError(c, err)
		return
	}

	api.trackSearch(name, req.Query, candidates, results, startTime)
	c.JSON(http.StatusOK, results)
}

// ItemsSearchHandler ranks the items posted in the request body.
func (api *API) ItemsSearchHandler(c *gin.Context) {
	startTime := time.Now()

	var req ItemsSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	result := ValidateSearchRequest(&req.SearchRequest)
	if req.Items == nil {
		result.AddError("items", "Items are required")
	}
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	results, err := api.engine.SearchItems(c.Request.Context(), req.Items, req.toQuery())
	if err != nil {
		SendSearchError(c, err)
		return
	}

	api.trackSearch("", req.Query, len(req.Items), results, startTime)
	c.JSON(http.StatusOK, results)
}

// MultiSearchHandler runs several named queries against collections.
func (api *API) MultiSearchHandler(c *gin.Context) {
	var req MultiSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	result := &ValidationResult{Valid: true}
	if len(req.Queries) == 0 {
		result.AddError("queries", "At least one query is required")
	}
	for _, q := range req.Queries {
		if strings.TrimSpace(q.Name) == "" {
			result.AddError("queries.name", "Each query must have a name")
		}
		if q.Query == "" {
			result.AddError("queries.query", "Query '"+q.Name+"' has an empty search query")
		}
		if q.Limit < 0 {
			result.AddError("queries.limit", "Query '"+q.Name+"' has a negative limit")
		}
	}
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	multiQuery := services.MultiSearchQuery{Queries: make([]services.NamedSearchQuery, len(req.Queries))}
	for i, q := range req.Queries {
		multiQuery.Queries[i] = services.NamedSearchQuery(q)
	}

	results, err := api.engine.MultiSearch(c.Request.Context(), multiQuery)
	if err != nil {
		SendSearchError(c, err)
		return
	}

	for _, q := range req.Queries {
		if r, ok := results.Results[q.Name]; ok {
			api.analytics.TrackSearchEvent(model.SearchEvent{
				Collection:   q.Collection,
				Query:        q.Query,
				ResponseTime: time.Duration(r.Took) * time.Millisecond,
				ResultCount:  r.Total,
				Timestamp:    time.Now(),
			})
		}
	}

	c.JSON(http.StatusOK, results)
}

// SendSearchError maps a search failure to the matching response.
func SendSearchError(c *gin.Context, err error) {
	if errors.Is(err, c.Request.Context().Err()) && c.Request.Context().Err() != nil {
		SendError(c, http.StatusRequestTimeout, ErrorCodeSearchFailed, "Search cancelled: "+err.Error())
		return
	}
	if errors.Is(err, internalErrors.ErrInvalidInput) ||
		errors.Is(err, internalErrors.ErrCollectionNotFound) {
		SendDomainError(c, "search", err)
		return
	}
	SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, "Search failed: "+err.Error())
}

func (req SearchRequest) toQuery() services.SearchQuery {
	return services.SearchQuery{
		Query:  req.Query,
		Fields: req.Fields,
		Limit:  req.Limit,
	}
}

func (api *API) trackSearch(collection, query string, candidates int, results services.SearchResult, startTime time.Time) {
	api.analytics.TrackSearchEvent(model.SearchEvent{
		Collection:   collection,
		Query:        query,
		ResponseTime: time.Since(startTime),
		Candidates:   candidates,
		ResultCount:  results.Total,
		Timestamp:    time.Now(),
	})
}

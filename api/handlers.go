package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gcbaptista/go-simplified-search/internal/analytics"
	"github.com/gcbaptista/go-simplified-search/services"
)

// API holds dependencies for API handlers, primarily the search engine.
type API struct {
	engine    services.Engine
	analytics *analytics.Service
	logger    *logrus.Entry
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.Engine, logger *logrus.Entry) *API {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &API{
		engine:    engine,
		analytics: analytics.NewService(engine),
		logger:    logger.WithField("component", "api"),
	}
}

// SetupRoutes defines all the API routes for the search service.
func SetupRoutes(router *gin.Engine, engine services.Engine, logger *logrus.Entry) *API {
	apiHandler := NewAPI(engine, logger)

	router.Use(RequestIDMiddleware(), LoggerMiddleware(apiHandler.logger), CORSMiddleware())

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Search routes that do not target a single collection
	router.POST("/_search", apiHandler.ItemsSearchHandler)
	router.POST("/_multi_search", apiHandler.MultiSearchHandler)

	// Collection management routes
	collectionRoutes := router.Group("/collections")
	{
		collectionRoutes.POST("", apiHandler.CreateCollectionHandler)
		collectionRoutes.GET("", apiHandler.ListCollectionsHandler)
		collectionRoutes.GET("/:name", apiHandler.GetCollectionHandler)
		collectionRoutes.DELETE("/:name", apiHandler.DeleteCollectionHandler)

		// Document management routes per collection
		docRoutes := collectionRoutes.Group("/:name/documents")
		{
			docRoutes.PUT("", apiHandler.ReplaceDocumentsHandler)              // Replace all documents
			docRoutes.POST("", apiHandler.AddDocumentsHandler)                 // Add/Update documents
			docRoutes.GET("", apiHandler.GetDocumentsHandler)                  // List documents with pagination
			docRoutes.DELETE("", apiHandler.DeleteAllDocumentsHandler)         // Delete all documents
			docRoutes.GET("/:documentId", apiHandler.GetDocumentHandler)       // Get specific document
			docRoutes.DELETE("/:documentId", apiHandler.DeleteDocumentHandler) // Delete specific document
		}

		// Search route per collection
		collectionRoutes.POST("/:name/_search", apiHandler.SearchHandler)
	}

	return apiHandler
}

// CreateCollectionRequest is the body of POST /collections.
type CreateCollectionRequest struct {
	Name string `json:"name"`
}

// CollectionResponse describes a collection.
type CollectionResponse struct {
	Name          string `json:"name"`
	DocumentCount int    `json:"document_count"`
}

// CreateCollectionHandler handles the request to create a new collection.
func (api *API) CreateCollectionHandler(c *gin.Context) {
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	if result := ValidateCollectionName(req.Name); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.CreateCollection(req.Name); err != nil {
		SendDomainError(c, "create collection", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created", "name": req.Name})
}

// ListCollectionsHandler lists all collections with their document counts.
func (api *API) ListCollectionsHandler(c *gin.Context) {
	names := api.engine.ListCollections()
	collections := make([]CollectionResponse, 0, len(names))
	for _, name := range names {
		accessor, err := api.engine.GetCollection(name)
		if err != nil {
			// Deleted between listing and lookup
			continue
		}
		collections = append(collections, CollectionResponse{Name: name, DocumentCount: accessor.DocumentCount()})
	}

	c.JSON(http.StatusOK, gin.H{
		"collections": collections,
		"count":       len(collections),
	})
}

// GetCollectionHandler returns the details of a single collection.
func (api *API) GetCollectionHandler(c *gin.Context) {
	name := c.Param("name")
	accessor, err := api.engine.GetCollection(name)
	if err != nil {
		SendCollectionNotFoundError(c, name)
		return
	}

	c.JSON(http.StatusOK, CollectionResponse{Name: accessor.Name(), DocumentCount: accessor.DocumentCount()})
}

// DeleteCollectionHandler handles the request to delete a collection.
func (api *API) DeleteCollectionHandler(c *gin.Context) {
	name := c.Param("name")
	if err := api.engine.DeleteCollection(name); err != nil {
		SendDomainError(c, "delete collection", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Collection '" + name + "' deleted"})
}

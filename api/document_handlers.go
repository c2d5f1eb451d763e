package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-simplified-search/model"
	"github.com/gcbaptista/go-simplified-search/services"
)

// ReplaceDocumentsHandler replaces every document of a collection.
func (api *API) ReplaceDocumentsHandler(c *gin.Context) {
	accessor, docs, ok := api.bindDocuments(c)
	if !ok {
		return
	}

	accessor.ReplaceDocuments(docs)
	c.JSON(http.StatusOK, gin.H{
		"message":        fmt.Sprintf("%d document(s) stored in collection '%s'", len(docs), accessor.Name()),
		"document_count": accessor.DocumentCount(),
	})
}

// AddDocumentsHandler adds documents to a collection, updating those with a known documentID.
func (api *API) AddDocumentsHandler(c *gin.Context) {
	accessor, docs, ok := api.bindDocuments(c)
	if !ok {
		return
	}

	accessor.AddDocuments(docs)
	c.JSON(http.StatusOK, gin.H{
		"message":        fmt.Sprintf("%d document(s) added/updated in collection '%s'", len(docs), accessor.Name()),
		"document_count": accessor.DocumentCount(),
	})
}

// bindDocuments resolves the collection and parses the request body as one
// document or an array of documents. It writes the error response itself.
func (api *API) bindDocuments(c *gin.Context) (services.CollectionAccessor, []model.Document, bool) {
	name := c.Param("name")
	accessor, err := api.engine.GetCollection(name)
	if err != nil {
		SendCollectionNotFoundError(c, name)
		return nil, nil, false
	}

	var rawData interface{}
	if err := c.ShouldBindJSON(&rawData); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return nil, nil, false
	}

	docs, result := parseDocuments(rawData)
	if result.HasErrors() {
		SendValidationError(c, result)
		return nil, nil, false
	}

	return accessor, docs, true
}

// parseDocuments accepts a single JSON object or an array of objects.
// documentID is optional, but when present it must be a non-blank string.
func parseDocuments(rawData interface{}) ([]model.Document, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	var docs []model.Document
	switch data := rawData.(type) {
	case []interface{}:
		docs = make([]model.Document, 0, len(data))
		for i, item := range data {
			docMap, isMap := item.(map[string]interface{})
			if !isMap {
				result.AddError(fmt.Sprintf("documents[%d]", i), "Document is not a valid object")
				continue
			}
			docs = append(docs, docMap)
		}
	case map[string]interface{}:
		docs = []model.Document{data}
	default:
		result.AddError("body", "Expecting a document object or an array of documents")
		return nil, result
	}

	for i, doc := range docs {
		idVal, exists := doc["documentID"]
		if !exists {
			continue
		}
		id, isString := idVal.(string)
		if !isString {
			result.AddError(fmt.Sprintf("documents[%d].documentID", i),
				fmt.Sprintf("documentID has unexpected type %T (expected string)", idVal))
			continue
		}
		if strings.TrimSpace(id) == "" {
			result.AddError(fmt.Sprintf("documents[%d].documentID", i), "documentID cannot be empty or whitespace-only")
			continue
		}
		doc["documentID"] = strings.TrimSpace(id)
	}

	return docs, result
}

// DeleteAllDocumentsHandler handles the request to delete all documents from a collection.
func (api *API) DeleteAllDocumentsHandler(c *gin.Context) {
	name := c.Param("name")
	accessor, err := api.engine.GetCollection(name)
	if err != nil {
		SendCollectionNotFoundError(c, name)
		return
	}

	accessor.DeleteAllDocuments()
	c.JSON(http.StatusOK, gin.H{"message": "All documents deleted from collection '" + name + "'"})
}

// DocumentListRequest defines the structure for document listing requests
type DocumentListRequest struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// GetDocumentsHandler lists documents in a collection with pagination
func (api *API) GetDocumentsHandler(c *gin.Context) {
	name := c.Param("name")
	accessor, err := api.engine.GetCollection(name)
	if err != nil {
		SendCollectionNotFoundError(c, name)
		return
	}

	var req DocumentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid query parameters: "+err.Error())
		return
	}

	// Set defaults
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100 // Maximum page size
	}

	allDocs := accessor.Documents()
	totalCount := len(allDocs)

	// Pages past the end are empty; comparing before multiplying keeps huge page numbers from overflowing.
	startIndex := totalCount
	if req.Page-1 <= totalCount/req.PageSize {
		startIndex = min((req.Page-1)*req.PageSize, totalCount)
	}
	endIndex := min(startIndex+req.PageSize, totalCount)
	documents := allDocs[startIndex:endIndex]

	totalPages := (totalCount + req.PageSize - 1) / req.PageSize

	c.JSON(http.StatusOK, gin.H{
		"documents":   documents,
		"total":       totalCount,
		"page":        req.Page,
		"page_size":   req.PageSize,
		"total_pages": totalPages,
	})
}

// GetDocumentHandler retrieves a specific document by ID
func (api *API) GetDocumentHandler(c *gin.Context) {
	name := c.Param("name")
	documentID := c.Param("documentId")

	if result := ValidateDocumentID(documentID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	accessor, err := api.engine.GetCollection(name)
	if err != nil {
		SendCollectionNotFoundError(c, name)
		return
	}

	doc, err := accessor.GetDocument(documentID)
	if err != nil {
		SendDomainError(c, "get document", err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocumentHandler deletes a specific document by ID
func (api *API) DeleteDocumentHandler(c *gin.Context) {
	name := c.Param("name")
	documentID := c.Param("documentId")

	if result := ValidateDocumentID(documentID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	accessor, err := api.engine.GetCollection(name)
	if err != nil {
		SendCollectionNotFoundError(c, name)
		return
	}

	if err := accessor.DeleteDocument(documentID); err != nil {
		SendDomainError(c, "delete document", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document '" + documentID + "' deleted from collection '" + name + "'"})
}

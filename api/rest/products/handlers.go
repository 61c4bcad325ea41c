package products

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/techworld/server/internal/errors"
	"codeberg.org/techworld/server/internal/retriever"
)

// SemanticHandler godoc
// @Summary Semantic product lookup
// @Description Finds products by meaning using vector search and cross-encoder reranking
// @Tags products
// @Accept json
// @Produce json
// @Param request body LookupRequest true "Lookup request"
// @Success 200 {object} retriever.LookupResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/products/semantic [post]
func SemanticHandler(ret *retriever.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LookupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// the lookup contract is exception-free: failures come back as a
		// zero-product envelope with an error summary
		c.JSON(http.StatusOK, ret.SemanticLookup(c.Request.Context(), req.Query))
	}
}

// StructuredHandler godoc
// @Summary Structured product lookup
// @Description Answers spec-filter questions through generated SQL, falling back to semantic search when nothing matches
// @Tags products
// @Accept json
// @Produce json
// @Param request body LookupRequest true "Lookup request"
// @Success 200 {object} retriever.LookupResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/products/structured [post]
func StructuredHandler(ret *retriever.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LookupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		c.JSON(http.StatusOK, ret.StructuredLookup(c.Request.Context(), req.Query))
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
)

// region --- DTOs ---

// GraphQLRequest is the standard GraphQL-over-HTTP request body.
type GraphQLRequest struct {
	Query         string                 `json:"query" binding:"required" example:"{ games { id title } }"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLResponse documents the shape returned by the GraphQL endpoint.
type GraphQLResponse struct {
	Data   map[string]interface{}   `json:"data"`
	Errors []map[string]interface{} `json:"errors,omitempty"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// GraphQL godoc
// @Summary      Execute a GraphQL operation
// @Description  Runs a query or mutation against the game reviews schema. Field errors are reported in the errors array with HTTP 200.
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GraphQLRequest true "GraphQL request"
// @Success      200  {object}  GraphQLResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /graphql [post]
func GraphQL(schema *graphql.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GraphQLRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		response := schema.Exec(c.Request.Context(), input.Query, input.OperationName, input.Variables)
		c.JSON(http.StatusOK, response)
	}
}

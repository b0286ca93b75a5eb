package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickbill/orderview-api/pkg/apperror"
)

// ErrorBody is the error contract shared by all failure responses. The
// invoice frontend only reads the error field, so there is no envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK sends a 200 response with the document as the body
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response, mapping the error to its HTTP status
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, ErrorBody{Error: appErr.Message})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/lk2023060901/repack-search-backend/internal/pkg/errors"
)

// Response is the envelope every endpoint returns, success or failure.
// StatusCode always mirrors the HTTP status of the reply; Data is null
// on failures and may be null on successes that carry no payload.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	StatusCode int         `json:"statusCode"`
}

// Success sends a success envelope (200)
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Message:    "",
		Data:       data,
		StatusCode: http.StatusOK,
	})
}

// SuccessWithMessage sends a success envelope with a message (200)
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: http.StatusOK,
	})
}

// Error sends a failure envelope
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{
		Success:    false,
		Message:    message,
		Data:       nil,
		StatusCode: httpStatus,
	})
}

// BadRequest sends a 400 failure
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 failure
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 failure
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// BadGateway sends a 502 failure
func BadGateway(c *gin.Context, message string) {
	Error(c, http.StatusBadGateway, message)
}

// HandleError maps an AppError onto the failure envelope
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	code := apperrors.ExtractCode(err)
	httpStatus := apperrors.GetHTTPStatus(code)
	message := apperrors.FormatError(code, apperrors.GetDetails(err))

	c.JSON(httpStatus, Response{
		Success:    false,
		Message:    message,
		Data:       nil,
		StatusCode: httpStatus,
	})
}

// ErrorWithCode sends a failure envelope for a business error code
func ErrorWithCode(c *gin.Context, code int, details ...string) {
	httpStatus := apperrors.GetHTTPStatus(code)
	message := apperrors.FormatError(code, details...)

	c.JSON(httpStatus, Response{
		Success:    false,
		Message:    message,
		Data:       nil,
		StatusCode: httpStatus,
	})
}

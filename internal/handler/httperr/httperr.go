package httperr

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"ticketqueen/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the error body every handler writes: {"error":{"message":...},"detail":...}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError records err on the context for the logging middleware and
// writes the public response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortUnavailable answers 503 with a Retry-After hint of at least one second.
func AbortUnavailable(c *gin.Context, err error, msg string, detail any, retryAfter time.Duration) {
	secs := max(int(math.Ceil(retryAfter.Seconds())), 1)
	c.Header("Retry-After", strconv.Itoa(secs))
	AbortWithError(c, http.StatusServiceUnavailable, err, msg, detail)
}

// AbortBind reports a body that failed to bind: 413 past the body limit, 400 otherwise.
func AbortBind(c *gin.Context, err error, msg string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Request body too large", nil)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

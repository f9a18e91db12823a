package httperr

import (
	"net/http"

	"storefront-partners/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error to a status by its category marker.
// Uncategorized errors become an opaque 500.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, publicMessage(err), nil)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrInvalidState), errs.Is(err, errs.ErrDuplicateOperation):
		return http.StatusConflict
	case errs.Is(err, errs.ErrPolicyViolation):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrDownstreamFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage drops wrap prefixes so internal context never reaches the client.
func publicMessage(err error) string {
	for {
		next := errs.UnwrapOnce(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// BadRequest reports a malformed body, path or query parameter.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

package httperr

import (
	"log/slog"
	"net/http"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL_ERROR"

	stackLines = 12
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type ConflictDetail struct {
	ConflictingBookings []queries.ConflictView `json:"conflicting_bookings"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, codeFor(status, err), detail)
}

// AbortWithDomainError maps a classified error to its status and code.
// Unclassified errors are logged with their stack and answered with a generic 500.
func AbortWithDomainError(c *gin.Context, err error) {
	if err == nil {
		panic("AbortWithDomainError: err cannot be nil")
	}

	var status int
	switch {
	case errs.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errs.Is(err, errs.ErrInvalidTransition), errs.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	default:
		slog.ErrorContext(c.Request.Context(), "unhandled error",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLines))
		abort(c, http.StatusInternalServerError, err, "Internal server error", CodeInternal, nil)
		return
	}

	var detail any
	var conflict *booking.ConflictError
	if errs.As(err, &conflict) {
		detail = ConflictDetail{ConflictingBookings: queries.ToConflictViews(conflict.Conflicts)}
	}
	abort(c, status, err, errs.Cause(err).Error(), errs.Code(err), detail)
}

// Internal is the body every unclassified failure answers with.
func Internal() Response {
	return newResponse(http.StatusInternalServerError, "Internal server error", CodeInternal, nil)
}

func newResponse(status int, msg, code string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail
	return resp
}

func abort(c *gin.Context, status int, err error, msg, code string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := newResponse(status, msg, code, detail)

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func codeFor(status int, err error) string {
	if code := errs.Code(err); code != CodeInternal {
		return code
	}
	switch {
	case status == http.StatusBadRequest:
		return CodeBadRequest
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status == http.StatusTooManyRequests:
		return CodeRateLimited
	case status >= http.StatusInternalServerError:
		return CodeInternal
	default:
		return ""
	}
}

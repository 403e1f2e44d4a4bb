package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
)

// ProblemResponse is an RFC 7807 problem document. Validation failures
// additionally carry the ordered message list under "errors" — the key
// callers use to tell a failure payload from an entity payload.
type ProblemResponse struct {
	problems.DefaultProblem
	Errors []string `json:"errors,omitempty"`
}

// NewProblem builds a problem with i18n-resolved title and detail.
// The type URI is the configured base URL plus the problem path.
func NewProblem(c *gin.Context, problemPath, titleKey, detailKey string, status int, params ...map[string]interface{}) ProblemResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return ProblemResponse{
		DefaultProblem: problems.DefaultProblem{
			Type:     baseURL + problemPath,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// Respond writes the problem with the RFC 7807 media type.
func Respond(c *gin.Context, p ProblemResponse) {
	c.Writer.Header().Set("Content-Type", problems.ProblemMediaType)
	c.JSON(p.Status, p)
}

// ValidationProblem renders an accumulated validation failure.
func ValidationProblem(c *gin.Context, messages []string) ProblemResponse {
	p := NewProblem(
		c,
		"/problems/validation-error",
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	p.Errors = messages
	return p
}

// NotFoundProblem renders a 404 for the named resource.
func NotFoundProblem(c *gin.Context, resource string) ProblemResponse {
	return NewProblem(
		c,
		"/problems/not-found",
		"error.not_found.title",
		"error.not_found.detail",
		http.StatusNotFound,
		map[string]interface{}{"Resource": resource},
	)
}

// UnauthorizedProblem renders a 401.
func UnauthorizedProblem(c *gin.Context) ProblemResponse {
	return NewProblem(
		c,
		"/problems/unauthorized",
		"error.unauthorized.title",
		"error.unauthorized.detail",
		http.StatusUnauthorized,
	)
}

// ForbiddenProblem renders a 403.
func ForbiddenProblem(c *gin.Context) ProblemResponse {
	return NewProblem(
		c,
		"/problems/forbidden",
		"error.forbidden.title",
		"error.forbidden.detail",
		http.StatusForbidden,
	)
}

// InternalProblem renders a 500.
func InternalProblem(c *gin.Context) ProblemResponse {
	return NewProblem(
		c,
		"/problems/internal-error",
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

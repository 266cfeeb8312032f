package handler

import (
	"net/http"
	"time"

	"lark/internal/model"
	"lark/internal/service"

	"github.com/gin-gonic/gin"
)

// RedirectHandler handles slug visits
type RedirectHandler struct {
	resolver service.ResolverServiceInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(resolver service.ResolverServiceInterface) *RedirectHandler {
	return &RedirectHandler{resolver: resolver}
}

// Redirect handles GET /:slug
// @Summary Redirect to the destination URL
// @Description Resolves a slug and redirects, recording a click event asynchronously
// @Tags redirect
// @Param slug path string true "Slug"
// @Success 302
// @Failure 404
// @Failure 410
// @Router /:slug [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	slug := c.Param("slug")

	res, err := h.resolver.Resolve(c.Request.Context(), slug)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"slug": slug})
		return
	}

	switch res.Decision {
	case model.DecisionAllow:
		// Response first; the visit enqueue below is non-blocking so a
		// slow analytics store never adds latency here.
		c.Redirect(http.StatusFound, res.Target)
		h.resolver.RecordVisit(res.Link, visitFromRequest(c))

	case model.DecisionDeniedAdmin:
		c.HTML(http.StatusGone, "disabled.html", gin.H{
			"slug":   slug,
			"reason": res.Link.DisabledReason,
		})

	case model.DecisionDeniedExpired:
		c.HTML(http.StatusGone, "410.html", gin.H{"slug": slug})

	default:
		// Owner-deactivated links are indistinguishable from missing ones
		c.HTML(http.StatusNotFound, "404.html", gin.H{"slug": slug})
	}
}

// visitFromRequest captures the request metadata the recorder needs.
// The raw IP only lives in this value until enrichment hashes it.
func visitFromRequest(c *gin.Context) model.Visit {
	return model.Visit{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
		Language:  c.GetHeader("Accept-Language"),
		Time:      time.Now().UTC(),
	}
}

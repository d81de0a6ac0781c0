package restapi

import (
	"net/http"
	"strings"

	"pixelity_site/internal/app/port"
	"pixelity_site/internal/config"

	"github.com/gin-gonic/gin"
)

// NavItem is one navigation bar link.
type NavItem struct {
	Label  string
	Anchor string
}

var navLabels = []string{"Home", "About", "Services", "Projects", "Team", "Contact"}

// PageHandler renders the single site page.
type PageHandler struct {
	views    port.ViewRegistry
	site     config.SiteConfig
	navItems []NavItem
}

// NewPageHandler создает обработчик страницы.
func NewPageHandler(views port.ViewRegistry, site config.SiteConfig) *PageHandler {
	items := make([]NavItem, len(navLabels))
	for i, label := range navLabels {
		items[i] = NavItem{Label: label, Anchor: strings.ToLower(label)}
	}
	return &PageHandler{views: views, site: site, navItems: items}
}

// IndexHandler renders the page for a fresh view, so a reload always starts disconnected.
func (h *PageHandler) IndexHandler(c *gin.Context) {
	v := h.views.Open()
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Site":     h.site,
		"View":     v,
		"NavItems": h.navItems,
	})
}

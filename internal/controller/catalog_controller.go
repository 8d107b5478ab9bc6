package controller

import (
	"prompt_school_backend/internal/catalog"
	"prompt_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the static content libraries. Everything here is
// public and immutable.
type CatalogController struct {
	Catalog *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{Catalog: cat}
}

// @Summary List tutorials
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response
// @Router /catalog/tutorials [get]
func (c *CatalogController) GetTutorials(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.Tutorials)
}

// @Summary Get one tutorial with its lessons and exercises
// @Tags catalog
// @Produce json
// @Param id path string true "tutorial id"
// @Success 200 {object} util.Response
// @Router /catalog/tutorials/{id} [get]
func (c *CatalogController) GetTutorial(ctx *gin.Context) {
	t, ok := c.Catalog.Tutorial(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, t)
}

// @Summary List prompt patterns
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response
// @Router /catalog/patterns [get]
func (c *CatalogController) GetPatterns(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.Patterns)
}

// @Summary List worked prompt examples
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response
// @Router /catalog/examples [get]
func (c *CatalogController) GetExamples(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.Examples)
}

// @Summary List playground code templates
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response
// @Router /catalog/templates [get]
func (c *CatalogController) GetTemplates(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.Templates)
}

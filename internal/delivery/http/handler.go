package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcpick/backend/internal/domain"
	"github.com/pcpick/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog   domain.CatalogRepository
	fps       domain.FPSRepository
	recommend *usecase.RecommendService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog domain.CatalogRepository, fps domain.FPSRepository, recommend *usecase.RecommendService) *Handler {
	return &Handler{
		catalog:   catalog,
		fps:       fps,
		recommend: recommend,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pcpick-backend",
		"version": "1.0.0",
	})
}

// validPurposes / validBudgets / validDesigns bound the wizard enums at the
// API edge so the engine only ever sees known values or empty strings.
var validPurposes = map[string]bool{
	domain.PurposeGaming: true, domain.PurposeOffice: true, domain.PurposeEditing: true,
	domain.Purpose3D: true, domain.PurposeAI: true, domain.PurposeStreaming: true,
}

var validBudgets = map[string]bool{
	domain.BudgetUnder100: true, domain.Budget100To200: true,
	domain.Budget200To300: true, domain.BudgetOver300: true,
}

var validDesigns = map[string]bool{
	domain.DesignBlack: true, domain.DesignWhite: true, domain.DesignRGB: true,
}

// parseInstallment maps the wire representation of the installment choice
// onto the tagged constraint value.
func parseInstallment(s string) (domain.InstallmentChoice, error) {
	switch s {
	case "":
		return domain.InstallmentNone, nil
	case "24":
		return domain.Installment24, nil
	case "36":
		return domain.Installment36, nil
	case "nointerest":
		return domain.InstallmentAnyNoInterest, nil
	case "24_36_priority":
		return domain.InstallmentPreferNoInterest, nil
	}
	return domain.InstallmentNone, domain.ErrInvalidRequest
}

// ListProducts handles the manual filter UI surface.
// GET /api/v1/products?game=&tier=&price_range=&usage=&installment=&case_color=&search=
func (h *Handler) ListProducts(c *gin.Context) {
	installment, err := parseInstallment(c.Query("installment"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "installment must be one of: 24, 36, nointerest, 24_36_priority",
		})
		return
	}

	query := domain.FilterQuery{
		Game:        c.Query("game"),
		Tier:        c.Query("tier"),
		PriceRange:  c.Query("price_range"),
		Usage:       c.Query("usage"),
		Installment: installment,
		CaseColor:   c.Query("case_color"),
		Search:      c.Query("search"),
	}

	snapshot, err := h.catalog.Snapshot()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not available"})
		return
	}

	filtered := usecase.FilterProducts(snapshot.Products, query)
	if filtered == nil {
		filtered = []domain.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":     filtered,
		"count":        len(filtered),
		"last_updated": snapshot.LastUpdated,
	})
}

// recommendationRequest is the wire form of a wizard intent
type recommendationRequest struct {
	Purpose     string `json:"purpose" binding:"required"`
	Game        string `json:"game"`
	Budget      string `json:"budget"`
	Design      string `json:"design"`
	Installment string `json:"installment"`
	Debug       bool   `json:"debug"`
}

// Recommend handles the guided wizard surface.
// POST /api/v1/recommendations
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "purpose is required"})
		return
	}

	if !validPurposes[req.Purpose] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown purpose: " + req.Purpose})
		return
	}
	if req.Budget != "" && !validBudgets[req.Budget] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown budget: " + req.Budget})
		return
	}
	if req.Design != "" && !validDesigns[req.Design] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown design: " + req.Design})
		return
	}

	installment, err := parseInstallment(req.Installment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "installment must be one of: 24, 36, nointerest, 24_36_priority",
		})
		return
	}

	snapshot, err := h.catalog.Snapshot()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not available"})
		return
	}

	intent := domain.WizardIntent{
		Purpose:     req.Purpose,
		Game:        req.Game,
		Budget:      req.Budget,
		Design:      req.Design,
		Installment: installment,
	}

	result := h.recommend.Recommend(snapshot.Products, intent, usecase.RecommendOptions{Debug: req.Debug})
	c.JSON(http.StatusOK, result)
}

// ProductFPS annotates one product card with its expected frame rate.
// GET /api/v1/products/:id/fps?game=<canonical or alias>
func (h *Handler) ProductFPS(c *gin.Context) {
	game := c.Query("game")
	if game == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game query parameter is required"})
		return
	}

	product, err := h.catalog.Product(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not available"})
		return
	}

	canonical := usecase.ResolveGameToCanonical(game)
	fpsText := usecase.ExpectedFPS(*product, canonical, h.fps.Reference())

	c.JSON(http.StatusOK, gin.H{
		"product_id": product.ID,
		"game":       canonical,
		"fps_text":   fpsText,
	})
}

// CatalogStatus reports snapshot freshness and product counts.
// GET /api/v1/catalog/status
func (h *Handler) CatalogStatus(c *gin.Context) {
	snapshot, err := h.catalog.Snapshot()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not available"})
		return
	}

	// Displayable = what an unconstrained filter query surfaces.
	displayable := len(usecase.FilterProducts(snapshot.Products, domain.FilterQuery{}))

	c.JSON(http.StatusOK, gin.H{
		"last_updated": snapshot.LastUpdated,
		"total":        len(snapshot.Products),
		"displayable":  displayable,
	})
}

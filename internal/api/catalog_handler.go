package api

import (
	"alcyxob/football-training/internal/domain"
	"alcyxob/football-training/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service dependency.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateFullPlanRequest defines the expected JSON for creating a plan.
type CreateFullPlanRequest struct {
	Title           string                   `json:"titulo" binding:"required"`
	Description     string                   `json:"descripcion"`
	Category        string                   `json:"categoria"`
	DurationMonths  int                      `json:"duracion_meses" binding:"min=0"`
	SessionsPerWeek int                      `json:"sesiones_por_semana" binding:"min=0"`
	SessionDuration int                      `json:"duracion_sesion" binding:"min=0"` // Minutes
	Mesocycles      []domain.MesocycleCreate `json:"mesociclos" binding:"dive"`
	BasicMaterial   []string                 `json:"material_basico"`
}

// MapCreateRequestToPlan converts the request DTO into a domain.FullPlan. Embedded
// mesocycles are numbered from 1 in request order. Absent lists become empty lists.
func MapCreateRequestToPlan(req CreateFullPlanRequest) *domain.FullPlan {
	plan := &domain.FullPlan{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		DurationMonths:  req.DurationMonths,
		SessionsPerWeek: req.SessionsPerWeek,
		SessionDuration: req.SessionDuration,
		Mesocycles:      make([]domain.Mesocycle, 0, len(req.Mesocycles)),
		BasicMaterial:   req.BasicMaterial,
	}
	for i, m := range req.Mesocycles {
		plan.Mesocycles = append(plan.Mesocycles, domain.Mesocycle{
			ID:          i + 1,
			Name:        m.Name,
			Month:       m.Month,
			Description: m.Description,
			Color:       m.Color,
			Objective:   m.Objective,
			Weeks:       m.Weeks,
		})
	}
	if plan.BasicMaterial == nil {
		plan.BasicMaterial = []string{}
	}
	return plan
}

// --- Handler Methods ---

// Root godoc
// @Summary Liveness message
// @Tags Catalog
// @Produce json
// @Success 200 {object} gin.H
// @Router / [get]
func (h *CatalogHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Football Training API is running"})
}

// GetMesocycles godoc
// @Summary List all mesocycles
// @Tags Mesocycles
// @Produce json
// @Success 200 {array} domain.Mesocycle
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /mesociclos [get]
func (h *CatalogHandler) GetMesocycles(c *gin.Context) {
	mesocycles, err := h.catalogService.ListMesocycles(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Error retrieving mesociclos")
		return
	}
	if mesocycles == nil {
		mesocycles = []domain.Mesocycle{}
	}
	c.JSON(http.StatusOK, mesocycles)
}

// GetMesocycle godoc
// @Summary Get one mesocycle
// @Tags Mesocycles
// @Produce json
// @Param id path int true "Mesocycle ID"
// @Success 200 {object} domain.Mesocycle
// @Failure 404 {object} gin.H "Mesocycle not found"
// @Failure 422 {object} gin.H "Non-integer id"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /mesociclos/{id} [get]
func (h *CatalogHandler) GetMesocycle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	mesocycle, err := h.catalogService.GetMesocycle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMesocycleNotFound) {
			abortWithError(c, http.StatusNotFound, "Mesociclo not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error retrieving mesociclo")
		}
		return
	}
	c.JSON(http.StatusOK, mesocycle)
}

// GetMesocycleDetail godoc
// @Summary Get a mesocycle with its objectives and weekly training
// @Tags Mesocycles
// @Produce json
// @Param id path int true "Mesocycle ID"
// @Success 200 {object} domain.MesocycleDetail
// @Failure 404 {object} gin.H "Mesocycle not found"
// @Failure 422 {object} gin.H "Non-integer id"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /mesociclos/{id}/detalle [get]
func (h *CatalogHandler) GetMesocycleDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.catalogService.GetMesocycleDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMesocycleNotFound) {
			abortWithError(c, http.StatusNotFound, "Mesociclo not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error retrieving mesociclo details")
		}
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetWeeklyTraining godoc
// @Summary List the weekly training of a mesocycle
// @Description Unknown mesocycle ids return an empty array, not 404.
// @Tags Mesocycles
// @Produce json
// @Param id path int true "Mesocycle ID"
// @Success 200 {array} domain.WeeklyTraining
// @Failure 422 {object} gin.H "Non-integer id"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /mesociclos/{id}/sesiones [get]
func (h *CatalogHandler) GetWeeklyTraining(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	weeks, err := h.catalogService.ListWeeklyTraining(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Error retrieving sesiones")
		return
	}
	if weeks == nil {
		weeks = []domain.WeeklyTraining{}
	}
	c.JSON(http.StatusOK, weeks)
}

// GetFullPlan godoc
// @Summary Get the complete program plan
// @Tags Plan
// @Produce json
// @Success 200 {object} domain.FullPlan
// @Failure 404 {object} gin.H "Plan not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /planificacion [get]
func (h *CatalogHandler) GetFullPlan(c *gin.Context) {
	plan, err := h.catalogService.GetFullPlan(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Planificación not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error retrieving planificación")
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreateFullPlan godoc
// @Summary Create a program plan
// @Description Inserts a new plan document. A second plan is accepted; GET returns the earliest.
// @Tags Plan
// @Accept json
// @Produce json
// @Param plan body CreateFullPlanRequest true "Plan"
// @Success 201 {object} domain.FullPlan
// @Failure 422 {object} gin.H "Malformed body"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /planificacion [post]
func (h *CatalogHandler) CreateFullPlan(c *gin.Context) {
	var req CreateFullPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	plan, err := h.catalogService.CreateFullPlan(c.Request.Context(), MapCreateRequestToPlan(req))
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlan) {
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error creating planificación")
		}
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GetBasicMaterial godoc
// @Summary Fixed list of basic training material
// @Tags Plan
// @Produce json
// @Success 200 {object} gin.H
// @Router /material-basico [get]
func (h *CatalogHandler) GetBasicMaterial(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"material": h.catalogService.BasicMaterial()})
}

// InitData godoc
// @Summary Seed the catalog
// @Description Idempotent: a no-op when mesocycles already exist.
// @Tags Admin
// @Produce json
// @Success 200 {object} gin.H
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /init-data [post]
func (h *CatalogHandler) InitData(c *gin.Context) {
	seeded, err := h.catalogService.Seed(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Error initializing data")
		return
	}
	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Data already exists, skipping initialization"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data initialized successfully"})
}

// GetSeedStatus godoc
// @Summary Progress of the last seed run
// @Tags Admin
// @Produce json
// @Success 200 {object} service.SeedStatus
// @Router /init-data/status [get]
func (h *CatalogHandler) GetSeedStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.SeedStatus())
}

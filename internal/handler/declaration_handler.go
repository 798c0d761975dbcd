package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/N05TR4/gdt-sistema/internal/declaration"
	"github.com/N05TR4/gdt-sistema/internal/export"
	"github.com/N05TR4/gdt-sistema/internal/platform/clock"
	"github.com/N05TR4/gdt-sistema/internal/service"
	"github.com/N05TR4/gdt-sistema/pkg/pagination"
	"github.com/N05TR4/gdt-sistema/pkg/response"

	"github.com/gin-gonic/gin"
)

type DeclarationHandler struct {
	declarationService service.DeclarationService
	clock              clock.Clock
	log                *slog.Logger
}

func NewDeclarationHandler(declarationService service.DeclarationService, clk clock.Clock, log *slog.Logger) *DeclarationHandler {
	if clk == nil {
		clk = clock.Real()
	}
	if log == nil {
		log = slog.Default()
	}
	return &DeclarationHandler{
		declarationService: declarationService,
		clock:              clk,
		log:                log,
	}
}

func (h *DeclarationHandler) RegisterRoutes(router *gin.RouterGroup) {
	declarations := router.Group("/api/declarations")
	{
		declarations.POST("", h.CreateDeclaration)
		declarations.GET("/:id", h.GetDeclaration)
		declarations.GET("/number/:number", h.GetDeclarationByNumber)
		declarations.GET("/taxpayer/:taxpayerId", h.ListByTaxpayer)
		declarations.GET("/taxpayer/:taxpayerId/export", h.ExportTaxpayer)
		declarations.PUT("/:id", h.UpdateAmounts)
		declarations.POST("/:id/file", h.FileDeclaration)
		declarations.POST("/:id/approve", h.ApproveDeclaration)
		declarations.POST("/:id/reject", h.RejectDeclaration)
	}
}

// CreateDeclaration opens a new draft declaration
// @Summary      Create declaration
// @Description  Creates a draft declaration and computes its tax. Only one non-rejected declaration may exist per taxpayer, period and tax type.
// @Tags         declarations
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateDeclarationRequest  true  "Create Declaration Payload"
// @Success      201      {object}  response.Response{data=service.DeclarationResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/declarations [post]
func (h *DeclarationHandler) CreateDeclaration(c *gin.Context) {
	var req service.CreateDeclarationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	res, err := h.declarationService.CreateDeclaration(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, res))
}

// GetDeclaration returns a declaration by id
// @Summary      Get declaration
// @Description  Retrieves the full view of a declaration, including due date and total payable
// @Tags         declarations
// @Produce      json
// @Param        id   path      string  true  "Declaration ID (UUID)"
// @Success      200  {object}  response.Response{data=service.DeclarationResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/declarations/{id} [get]
func (h *DeclarationHandler) GetDeclaration(c *gin.Context) {
	res, err := h.declarationService.GetDeclaration(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// GetDeclarationByNumber returns a declaration by filing number
// @Summary      Get declaration by filing number
// @Tags         declarations
// @Produce      json
// @Param        number  path      string  true  "Filing number (DECL-YYYY-NNNNNN)"
// @Success      200     {object}  response.Response{data=service.DeclarationResponse}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /api/declarations/number/{number} [get]
func (h *DeclarationHandler) GetDeclarationByNumber(c *gin.Context) {
	res, err := h.declarationService.GetDeclarationByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ListByTaxpayer returns a page of a taxpayer's declarations
// @Summary      List declarations by taxpayer
// @Description  Retrieves a paginated list of declarations for a taxpayer, newest first
// @Tags         declarations
// @Produce      json
// @Param        taxpayerId  path      string  true   "Taxpayer ID (9 digits)"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        page_size   query     int     false  "Number of items per page (default 10, max 100)"
// @Success      200         {object}  response.Response{data=service.DeclarationPage}
// @Failure      400         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Router       /api/declarations/taxpayer/{taxpayerId} [get]
func (h *DeclarationHandler) ListByTaxpayer(c *gin.Context) {
	params := pagination.Parse(c)

	page, err := h.declarationService.ListByTaxpayer(c.Request.Context(), c.Param("taxpayerId"), params.Page, params.PageSize)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, page))
}

// ExportTaxpayer downloads every declaration of a taxpayer as a spreadsheet
// @Summary      Export declarations to Excel
// @Tags         declarations
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        taxpayerId  path  string  true  "Taxpayer ID (9 digits)"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/declarations/taxpayer/{taxpayerId}/export [get]
func (h *DeclarationHandler) ExportTaxpayer(c *gin.Context) {
	data, err := h.declarationService.ExportTaxpayer(c.Request.Context(), c.Param("taxpayerId"))
	if err != nil {
		h.fail(c, err)
		return
	}

	taxpayerID, _ := declaration.NormalizeTaxpayerID(c.Param("taxpayerId"))
	filename := fmt.Sprintf("declarations_%s_%s.xlsx", taxpayerID, h.clock.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, data)
}

// UpdateAmounts replaces the amounts of a draft declaration
// @Summary      Update declaration amounts
// @Description  Replaces income and expenses of a draft declaration and recomputes its tax
// @Tags         declarations
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Declaration ID (UUID)"
// @Param        payload  body      service.UpdateAmountsRequest  true  "Update Amounts Payload"
// @Success      200      {object}  response.Response{data=service.DeclarationResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/declarations/{id} [put]
func (h *DeclarationHandler) UpdateAmounts(c *gin.Context) {
	var req service.UpdateAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	res, err := h.declarationService.UpdateAmounts(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// FileDeclaration presents a draft declaration
// @Summary      File declaration
// @Description  Files a draft declaration. Filing after the due date assesses the late penalty.
// @Tags         declarations
// @Produce      json
// @Param        id   path      string  true  "Declaration ID (UUID)"
// @Success      200  {object}  response.Response{data=service.DeclarationResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/declarations/{id}/file [post]
func (h *DeclarationHandler) FileDeclaration(c *gin.Context) {
	res, err := h.declarationService.FileDeclaration(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ApproveDeclaration approves a filed declaration
// @Summary      Approve declaration
// @Tags         declarations
// @Produce      json
// @Param        id   path      string  true  "Declaration ID (UUID)"
// @Success      200  {object}  response.Response{data=service.DeclarationResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/declarations/{id}/approve [post]
func (h *DeclarationHandler) ApproveDeclaration(c *gin.Context) {
	res, err := h.declarationService.ApproveDeclaration(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// RejectDeclaration rejects a filed declaration
// @Summary      Reject declaration
// @Description  Rejects a filed declaration. Remarks are stored verbatim; the period becomes available for a new declaration.
// @Tags         declarations
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Declaration ID (UUID)"
// @Param        payload  body      service.RejectDeclarationRequest  true  "Reject Declaration Payload"
// @Success      200      {object}  response.Response{data=service.DeclarationResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/declarations/{id}/reject [post]
func (h *DeclarationHandler) RejectDeclaration(c *gin.Context) {
	var req service.RejectDeclarationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	res, err := h.declarationService.RejectDeclaration(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

func (h *DeclarationHandler) fail(c *gin.Context, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		h.log.Error("http.request_failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		msg = "internal server error"
	}
	response.Fail(c, code, msg)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrDeclarationNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, declaration.ErrInvalidInput),
		errors.Is(err, declaration.ErrInvalidState),
		errors.Is(err, service.ErrDuplicatePeriod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/dto"
	"github.com/brunodmn/betoffice/internal/service/catalogservice"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/brunodmn/betoffice/pkg/utils"
)

type Service interface {
	ListBookmakers(ctx context.Context, p access.Principal) ([]domain.Bookmaker, error)
	CreateBookmaker(ctx context.Context, p access.Principal, name, logoURL string) (*domain.Bookmaker, error)
	UpdateBookmaker(ctx context.Context, p access.Principal, b *domain.Bookmaker) error
	ListSoftwareTools(ctx context.Context, p access.Principal) ([]domain.SoftwareTool, error)
	CreateSoftwareTool(ctx context.Context, p access.Principal, name string) (*domain.SoftwareTool, error)
	UpdateSoftwareTool(ctx context.Context, p access.Principal, tool *domain.SoftwareTool) error
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func toBookmakerResponse(b *domain.Bookmaker) dto.BookmakerResponseDTO {
	return dto.BookmakerResponseDTO{
		ID:      b.ID,
		Name:    b.Name,
		LogoURL: b.LogoURL,
		Active:  b.Active,
	}
}

func toSoftwareResponse(t *domain.SoftwareTool) dto.SoftwareToolResponseDTO {
	return dto.SoftwareToolResponseDTO{
		ID:     t.ID,
		Name:   t.Name,
		Active: t.Active,
	}
}

// GetBookmakers godoc
//
//	@Summary		List bookmakers
//	@Description	List bookmaker houses; operators see active ones only
//	@Tags			Catalog
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BookmakerResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookmakers [get]
func (h *CatalogHandler) GetBookmakers(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookmakers, err := h.catalogService.ListBookmakers(r.Context(), p)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.BookmakerResponseDTO, 0, len(bookmakers))
	for i := range bookmakers {
		resp = append(resp, toBookmakerResponse(&bookmakers[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// AddBookmaker godoc
//
//	@Summary		Create a bookmaker
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BookmakerRequestDTO	true	"Bookmaker to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.BookmakerResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookmakers [post]
func (h *CatalogHandler) AddBookmaker(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.BookmakerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bookmaker, err := h.catalogService.CreateBookmaker(r.Context(), p, req.Name, req.LogoURL)
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBookmakerResponse(bookmaker))
}

// UpdateBookmaker godoc
//
//	@Summary		Update a bookmaker
//	@Description	Rename a bookmaker, change its logo or toggle it active
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Bookmaker ID"
//	@Param			request	body	dto.BookmakerRequestDTO	true	"New bookmaker fields"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Bookmaker updated"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Bookmaker not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookmakers/{id} [put]
func (h *CatalogHandler) UpdateBookmaker(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.BookmakerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	err := h.catalogService.UpdateBookmaker(r.Context(), p, &domain.Bookmaker{
		ID:      chi.URLParam(r, "id"),
		Name:    req.Name,
		LogoURL: req.LogoURL,
		Active:  active,
	})
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bookmaker updated"})
}

// GetSoftwareTools godoc
//
//	@Summary		List software tools
//	@Description	List betting software tools; operators see active ones only
//	@Tags			Catalog
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SoftwareToolResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/software [get]
func (h *CatalogHandler) GetSoftwareTools(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tools, err := h.catalogService.ListSoftwareTools(r.Context(), p)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.SoftwareToolResponseDTO, 0, len(tools))
	for i := range tools {
		resp = append(resp, toSoftwareResponse(&tools[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// AddSoftwareTool godoc
//
//	@Summary		Create a software tool
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SoftwareToolRequestDTO	true	"Software tool to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SoftwareToolResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/software [post]
func (h *CatalogHandler) AddSoftwareTool(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SoftwareToolRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tool, err := h.catalogService.CreateSoftwareTool(r.Context(), p, req.Name)
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSoftwareResponse(tool))
}

// UpdateSoftwareTool godoc
//
//	@Summary		Update a software tool
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Software tool ID"
//	@Param			request	body	dto.SoftwareToolRequestDTO	true	"New software tool fields"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Software tool updated"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/software/{id} [put]
func (h *CatalogHandler) UpdateSoftwareTool(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SoftwareToolRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	err := h.catalogService.UpdateSoftwareTool(r.Context(), p, &domain.SoftwareTool{
		ID:     chi.URLParam(r, "id"),
		Name:   req.Name,
		Active: active,
	})
	if err != nil {
		respondCatalogError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Software tool updated"})
}

func respondCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogservice.ErrEmptyName):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalogservice.ErrBookmakerNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, access.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brunodmn/betoffice/internal/access"
	"github.com/brunodmn/betoffice/internal/domain"
	"github.com/brunodmn/betoffice/internal/dto"
	"github.com/brunodmn/betoffice/internal/service/userservice"
	"github.com/brunodmn/betoffice/pkg/auth"
	"github.com/brunodmn/betoffice/pkg/utils"
)

type Service interface {
	CreateUser(ctx context.Context, p access.Principal, in userservice.CreateUserInput) (*userservice.CreatedUser, error)
	DeleteUser(ctx context.Context, p access.Principal, profileID string) error
	ChangeRole(ctx context.Context, p access.Principal, profileID string, role domain.Role) error
	ListOperators(ctx context.Context, p access.Principal) ([]userservice.Operator, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser godoc
//
//	@Summary		Create a user
//	@Description	Provision an identity, profile and role in one privileged call
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateUserRequestDTO	true	"User to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CreateUserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		409	{object}	utils.Response	"Email already registered"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.userService.CreateUser(r.Context(), p, userservice.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateUserResponseDTO{
		Success: true,
		User: dto.CreatedUserDTO{
			ID:    created.ProfileID,
			Email: created.Email,
			Name:  created.Name,
			Role:  string(created.Role),
		},
	})
}

// DeleteUser godoc
//
//	@Summary		Delete a user
//	@Description	Remove a profile, its role rows and the backing identity; admins cannot delete themselves
//	@Tags			Users
//	@Produce		json
//	@Param			id	path	string	true	"Profile ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"User deleted"
//	@Failure		400	{object}	utils.Response	"Cannot delete your own account"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User deleted"})
}

// ChangeRole godoc
//
//	@Summary		Change a user's role
//	@Description	Reassign a profile between admin and operator; admins cannot change their own role
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Profile ID"
//	@Param			request	body	dto.ChangeRoleRequestDTO	true	"New role"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Role updated"
//	@Failure		400	{object}	utils.Response	"Invalid role or self change"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/role [put]
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.ChangeRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.userService.ChangeRole(r.Context(), p, chi.URLParam(r, "id"), domain.Role(req.Role)); err != nil {
		respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Role updated"})
}

// GetOperators godoc
//
//	@Summary		List operators
//	@Description	List every profile with its effective role; profiles without a role row count as operators
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OperatorResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *UserHandler) GetOperators(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	operators, err := h.userService.ListOperators(r.Context(), p)
	if err != nil {
		respondUserError(w, err)
		return
	}

	resp := make([]dto.OperatorResponseDTO, 0, len(operators))
	for _, op := range operators {
		resp = append(resp, dto.OperatorResponseDTO{
			ProfileID: op.Profile.ID,
			Name:      op.Profile.Name,
			Email:     op.Profile.Email,
			Role:      string(op.Role),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func respondUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userservice.ErrInvalidRole),
		errors.Is(err, access.ErrSelfRoleChange),
		errors.Is(err, access.ErrSelfDelete):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, userservice.ErrEmailTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, userservice.ErrProfileNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, access.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

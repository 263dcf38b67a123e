package handler

import (
	"encoding/json"
	"net/http"

	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/usecase"
	"wellness-clinic-service/pkg/response"
	"wellness-clinic-service/pkg/validator"
)

type ProviderHandler struct {
	providerUsecase usecase.ProviderUsecase
	validator       *validator.CustomValidator
}

func NewProviderHandler(providerUsecase usecase.ProviderUsecase, validator *validator.CustomValidator) *ProviderHandler {
	return &ProviderHandler{
		providerUsecase: providerUsecase,
		validator:       validator,
	}
}

func (h *ProviderHandler) GetAllProviders(w http.ResponseWriter, r *http.Request) {
	result, err := h.providerUsecase.GetAllProviders(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Providers retrieved successfully", result)
}

func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	result, err := h.providerUsecase.GetProvider(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Provider retrieved successfully", result)
}

func (h *ProviderHandler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	var req dto.UpdateProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.providerUsecase.UpdateProvider(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Provider updated successfully", result)
}

func (h *ProviderHandler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	if err := h.providerUsecase.DeleteProvider(r.Context(), id, cascadeRequested(r)); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Provider deleted successfully", nil)
}

package handler

import (
	"encoding/json"
	"net/http"

	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/usecase"
	"wellness-clinic-service/pkg/response"
	"wellness-clinic-service/pkg/validator"
)

type WellnessServiceHandler struct {
	serviceUsecase usecase.WellnessServiceUsecase
	validator      *validator.CustomValidator
}

func NewWellnessServiceHandler(serviceUsecase usecase.WellnessServiceUsecase, validator *validator.CustomValidator) *WellnessServiceHandler {
	return &WellnessServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

func (h *WellnessServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWellnessServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.serviceUsecase.CreateService(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", result)
}

func (h *WellnessServiceHandler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	result, err := h.serviceUsecase.GetAllServices(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", result)
}

func (h *WellnessServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	result, err := h.serviceUsecase.GetService(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", result)
}

func (h *WellnessServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.UpdateWellnessServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.serviceUsecase.UpdateService(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", result)
}

func (h *WellnessServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	if err := h.serviceUsecase.DeleteService(r.Context(), id, cascadeRequested(r)); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

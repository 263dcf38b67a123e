package handler

import (
	"encoding/json"
	"net/http"

	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/usecase"
	"wellness-clinic-service/pkg/response"
	"wellness-clinic-service/pkg/validator"
)

type EnrollmentHandler struct {
	enrollmentUsecase usecase.EnrollmentUsecase
	validator         *validator.CustomValidator
}

func NewEnrollmentHandler(enrollmentUsecase usecase.EnrollmentUsecase, validator *validator.CustomValidator) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentUsecase: enrollmentUsecase,
		validator:         validator,
	}
}

func (h *EnrollmentHandler) CreateEnrollment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.enrollmentUsecase.CreateEnrollment(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Enrollment created successfully", result)
}

func (h *EnrollmentHandler) GetAllEnrollments(w http.ResponseWriter, r *http.Request) {
	result, err := h.enrollmentUsecase.GetAllEnrollments(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollments retrieved successfully", result)
}

func (h *EnrollmentHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid enrollment ID", nil)
		return
	}

	result, err := h.enrollmentUsecase.GetEnrollment(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollment retrieved successfully", result)
}

func (h *EnrollmentHandler) UpdateEnrollment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid enrollment ID", nil)
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.enrollmentUsecase.UpdateEnrollment(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollment updated successfully", result)
}

func (h *EnrollmentHandler) DeleteEnrollment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid enrollment ID", nil)
		return
	}

	if err := h.enrollmentUsecase.DeleteEnrollment(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Enrollment deleted successfully", nil)
}

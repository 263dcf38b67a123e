package converter

import (
	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

// EnrollmentToResponse converts an Enrollment entity to its DTO
func EnrollmentToResponse(enrollment *entity.Enrollment) *dto.EnrollmentResponse {
	if enrollment == nil {
		return nil
	}

	response := &dto.EnrollmentResponse{
		ID:        enrollment.ID,
		PatientID: enrollment.PatientID,
		ServiceID: enrollment.ServiceID,
		StartDate: enrollment.StartDate.Format("2006-01-02"),
		EndDate:   enrollment.EndDate.Format("2006-01-02"),
		Progress:  enrollment.Progress,
		CreatedAt: enrollment.CreatedAt,
		UpdatedAt: enrollment.UpdatedAt,
	}

	if enrollment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&enrollment.Patient)
	}
	if enrollment.Service.ID != uuid.Nil {
		response.Service = WellnessServiceToResponse(&enrollment.Service)
	}

	return response
}

// EnrollmentsToResponses converts a slice of Enrollment entities
func EnrollmentsToResponses(enrollments []entity.Enrollment) []dto.EnrollmentResponse {
	responses := make([]dto.EnrollmentResponse, len(enrollments))
	for i, enrollment := range enrollments {
		resp := EnrollmentToResponse(&enrollment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

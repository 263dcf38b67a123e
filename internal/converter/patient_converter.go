package converter

import (
	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Email:     patient.Email,
		Phone:     patient.Phone,
		Address:   patient.Address,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}

	if !patient.DateOfBirth.IsZero() {
		response.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}

	return response
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

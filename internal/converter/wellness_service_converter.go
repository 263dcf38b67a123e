package converter

import (
	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/domain/entity"
)

// WellnessServiceToResponse converts a WellnessService entity to its DTO
func WellnessServiceToResponse(service *entity.WellnessService) *dto.WellnessServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.WellnessServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Duration:    service.DurationMinutes,
		Fee:         service.Fee,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}

// WellnessServicesToResponses converts a slice of WellnessService entities
func WellnessServicesToResponses(services []entity.WellnessService) []dto.WellnessServiceResponse {
	responses := make([]dto.WellnessServiceResponse, len(services))
	for i, service := range services {
		resp := WellnessServiceToResponse(&service)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

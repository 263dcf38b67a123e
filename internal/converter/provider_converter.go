package converter

import (
	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/domain/entity"
)

// ProviderToResponse converts a Provider entity to ProviderResponse DTO
func ProviderToResponse(provider *entity.Provider) *dto.ProviderResponse {
	if provider == nil {
		return nil
	}

	return &dto.ProviderResponse{
		ID:             provider.ID,
		Name:           provider.Name,
		Email:          provider.Email,
		Phone:          provider.Phone,
		Specialization: provider.Specialization,
		CreatedAt:      provider.CreatedAt,
		UpdatedAt:      provider.UpdatedAt,
	}
}

// ProvidersToResponses converts a slice of Provider entities to response DTOs
func ProvidersToResponses(providers []entity.Provider) []dto.ProviderResponse {
	responses := make([]dto.ProviderResponse, len(providers))
	for i, provider := range providers {
		resp := ProviderToResponse(&provider)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

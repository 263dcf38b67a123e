package converter

import (
	"time"

	"wellness-clinic-service/internal/delivery/dto"
	"wellness-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentToResponse converts a Payment entity to its DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	response := &dto.PaymentResponse{
		ID:            payment.ID,
		PatientID:     payment.PatientID,
		AppointmentID: payment.AppointmentID,
		ServiceID:     payment.ServiceID,
		Amount:        payment.Amount,
		PaymentStatus: string(payment.PaymentStatus),
		PaymentDate:   payment.PaymentDate.Format(time.RFC3339),
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}

	if payment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&payment.Patient)
	}
	if payment.Appointment.ID != uuid.Nil {
		response.Appointment = AppointmentToResponse(&payment.Appointment)
	}
	if payment.Service.ID != uuid.Nil {
		response.Service = WellnessServiceToResponse(&payment.Service)
	}

	return response
}

// PaymentsToResponses converts a slice of Payment entities
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		resp := PaymentToResponse(&payment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

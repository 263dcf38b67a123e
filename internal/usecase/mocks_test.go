package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"wellness-clinic-service/internal/domain/entity"
	"wellness-clinic-service/internal/domain/repository"
	"wellness-clinic-service/internal/service"
	"wellness-clinic-service/pkg/jwt"

	"github.com/google/uuid"
)

// --- MockPatientRepository ---

var _ repository.PatientRepository = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	CreateFunc              func(ctx context.Context, patient *entity.Patient) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindByEmailFunc         func(ctx context.Context, email string) (*entity.Patient, error)
	FindAllFunc             func(ctx context.Context) ([]entity.Patient, error)
	UpdateFunc              func(ctx context.Context, patient *entity.Patient) error
	UpdateHealthRecordsFunc func(ctx context.Context, id uuid.UUID, records string) (int64, error)
	CountReferencesFunc     func(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteCascadeFunc       func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) UpdateHealthRecords(ctx context.Context, id uuid.UUID, records string) (int64, error) {
	if m.UpdateHealthRecordsFunc != nil {
		return m.UpdateHealthRecordsFunc(ctx, id, records)
	}
	return 1, nil
}

func (m *MockPatientRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.CountReferencesFunc != nil {
		return m.CountReferencesFunc(ctx, id)
	}
	return 0, nil
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *MockPatientRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return 1, nil
}

// --- MockProviderRepository ---

var _ repository.ProviderRepository = (*MockProviderRepository)(nil)

type MockProviderRepository struct {
	CreateFunc          func(ctx context.Context, provider *entity.Provider) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*entity.Provider, error)
	FindByEmailFunc     func(ctx context.Context, email string) (*entity.Provider, error)
	FindAllFunc         func(ctx context.Context) ([]entity.Provider, error)
	UpdateFunc          func(ctx context.Context, provider *entity.Provider) error
	CountReferencesFunc func(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteCascadeFunc   func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockProviderRepository) Create(ctx context.Context, provider *entity.Provider) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, provider)
	}
	return nil
}

func (m *MockProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProviderRepository) FindByEmail(ctx context.Context, email string) (*entity.Provider, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockProviderRepository) FindAll(ctx context.Context) ([]entity.Provider, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProviderRepository) Update(ctx context.Context, provider *entity.Provider) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, provider)
	}
	return nil
}

func (m *MockProviderRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.CountReferencesFunc != nil {
		return m.CountReferencesFunc(ctx, id)
	}
	return 0, nil
}

func (m *MockProviderRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *MockProviderRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return 1, nil
}

// --- MockWellnessServiceRepository ---

var _ repository.WellnessServiceRepository = (*MockWellnessServiceRepository)(nil)

type MockWellnessServiceRepository struct {
	CreateFunc          func(ctx context.Context, service *entity.WellnessService) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*entity.WellnessService, error)
	FindAllFunc         func(ctx context.Context) ([]entity.WellnessService, error)
	UpdateFunc          func(ctx context.Context, service *entity.WellnessService) error
	CountReferencesFunc func(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteCascadeFunc   func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockWellnessServiceRepository) Create(ctx context.Context, svc *entity.WellnessService) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, svc)
	}
	return nil
}

func (m *MockWellnessServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WellnessService, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWellnessServiceRepository) FindAll(ctx context.Context) ([]entity.WellnessService, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockWellnessServiceRepository) Update(ctx context.Context, svc *entity.WellnessService) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, svc)
	}
	return nil
}

func (m *MockWellnessServiceRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.CountReferencesFunc != nil {
		return m.CountReferencesFunc(ctx, id)
	}
	return 0, nil
}

func (m *MockWellnessServiceRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *MockWellnessServiceRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return 1, nil
}

// --- MockAppointmentRepository ---

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc           func(ctx context.Context, appointment *entity.Appointment) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindAllFunc          func(ctx context.Context) ([]entity.Appointment, error)
	UpdateFunc           func(ctx context.Context, appointment *entity.Appointment) error
	UpdateStatusFromFunc func(ctx context.Context, id uuid.UUID, from []entity.AppointmentStatus, target entity.AppointmentStatus) (int64, error)
	CountPaymentsFunc    func(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteCascadeFunc    func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from []entity.AppointmentStatus, target entity.AppointmentStatus) (int64, error) {
	if m.UpdateStatusFromFunc != nil {
		return m.UpdateStatusFromFunc(ctx, id, from, target)
	}
	return 1, nil
}

func (m *MockAppointmentRepository) CountPayments(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.CountPaymentsFunc != nil {
		return m.CountPaymentsFunc(ctx, id)
	}
	return 0, nil
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *MockAppointmentRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return 1, nil
}

// --- MockEnrollmentRepository ---

var _ repository.EnrollmentRepository = (*MockEnrollmentRepository)(nil)

type MockEnrollmentRepository struct {
	CreateFunc   func(ctx context.Context, enrollment *entity.Enrollment) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Enrollment, error)
	FindAllFunc  func(ctx context.Context) ([]entity.Enrollment, error)
	UpdateFunc   func(ctx context.Context, enrollment *entity.Enrollment) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, enrollment)
	}
	return nil
}

func (m *MockEnrollmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Enrollment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEnrollmentRepository) FindAll(ctx context.Context) ([]entity.Enrollment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockEnrollmentRepository) Update(ctx context.Context, enrollment *entity.Enrollment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, enrollment)
	}
	return nil
}

func (m *MockEnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

// --- MockPaymentRepository ---

var _ repository.PaymentRepository = (*MockPaymentRepository)(nil)

type MockPaymentRepository struct {
	CreateFunc   func(ctx context.Context, payment *entity.Payment) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindAllFunc  func(ctx context.Context) ([]entity.Payment, error)
	UpdateFunc   func(ctx context.Context, payment *entity.Payment) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]entity.Payment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

// --- MockAuditService ---

var _ service.AuditService = (*MockAuditService)(nil)

// MockAuditService records the actions it saw so tests can assert on the
// trail without a database.
type MockAuditService struct {
	Actions []string
}

func (m *MockAuditService) LogCreate(ctx context.Context, actorID *uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

func (m *MockAuditService) LogUpdate(ctx context.Context, actorID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

func (m *MockAuditService) LogDelete(ctx context.Context, actorID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

func (m *MockAuditService) Recent(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	return nil, nil
}

// --- MockTokenStore ---

var _ service.TokenStore = (*MockTokenStore)(nil)

// MockTokenStore keeps issued token keys in a map.
type MockTokenStore struct {
	Tokens map[string]bool
}

func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{Tokens: map[string]bool{}}
}

func (m *MockTokenStore) key(subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType) string {
	return string(tokenType) + ":" + subjectID.String() + ":" + tokenID
}

func (m *MockTokenStore) Store(ctx context.Context, subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	m.Tokens[m.key(subjectID, tokenID, tokenType)] = true
	return nil
}

func (m *MockTokenStore) Exists(ctx context.Context, subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	return m.Tokens[m.key(subjectID, tokenID, tokenType)], nil
}

func (m *MockTokenStore) Revoke(ctx context.Context, subjectID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	delete(m.Tokens, m.key(subjectID, tokenID, tokenType))
	return nil
}

func (m *MockTokenStore) RevokeAll(ctx context.Context, subjectID uuid.UUID) error {
	for k := range m.Tokens {
		if strings.Contains(k, subjectID.String()) {
			delete(m.Tokens, k)
		}
	}
	return nil
}

// --- fakeHasher ---

var _ PasswordHasher = (*fakeHasher)(nil)

// fakeHasher avoids the bcrypt cost in unit tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hashed, password string) bool {
	return hashed == "hashed:"+password
}

var errMockFailure = errors.New("mock failure")

package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"wellness-clinic-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN. The
// schema from db/migrations must already be applied; the test is skipped
// when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return db
}

// A payment may belong to one patient while referencing another patient's
// appointment. Cascading the appointment's patient must remove that
// payment too, or the appointment delete trips the payments foreign key
// and the whole transaction rolls back.
func TestPatientDeleteCascadeRemovesCrossPatientPayments(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	suffix := uuid.NewString()[:8]
	patient := &entity.Patient{
		Name:        "Jane Doe",
		Email:       fmt.Sprintf("jane-%s@example.com", suffix),
		Password:    "irrelevant",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
	}
	payer := &entity.Patient{
		Name:        "John Roe",
		Email:       fmt.Sprintf("john-%s@example.com", suffix),
		Password:    "irrelevant",
		DateOfBirth: time.Date(1985, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	provider := &entity.Provider{
		Name:     "Dr. Smith",
		Email:    fmt.Sprintf("smith-%s@example.com", suffix),
		Password: "irrelevant",
	}
	svc := &entity.WellnessService{Name: "Yoga Program", Fee: decimal.NewFromInt(50)}
	for _, fixture := range []interface{}{patient, payer, provider, svc} {
		require.NoError(t, db.Create(fixture).Error)
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		ProviderID:      provider.ID,
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Status:          entity.AppointmentStatusPending,
	}
	require.NoError(t, db.Create(appointment).Error)

	payment := &entity.Payment{
		PatientID:     payer.ID,
		AppointmentID: appointment.ID,
		ServiceID:     svc.ID,
		Amount:        decimal.NewFromInt(75),
		PaymentStatus: entity.PaymentStatusPending,
		PaymentDate:   time.Now(),
		TransactionID: "TXN-test-" + suffix,
	}
	require.NoError(t, db.Create(payment).Error)

	t.Cleanup(func() {
		db.Delete(&entity.Payment{}, "id = ?", payment.ID)
		db.Delete(&entity.Appointment{}, "id = ?", appointment.ID)
		db.Delete(&entity.Patient{}, "id IN ?", []uuid.UUID{patient.ID, payer.ID})
		db.Delete(&entity.Provider{}, "id = ?", provider.ID)
		db.Delete(&entity.WellnessService{}, "id = ?", svc.ID)
	})

	repo := NewPatientRepository(db)
	affected, err := repo.DeleteCascade(ctx, patient.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	err = db.First(&entity.Payment{}, "id = ?", payment.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "cross-patient payment must go with the appointment")
	err = db.First(&entity.Appointment{}, "id = ?", appointment.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The paying patient itself survives.
	assert.NoError(t, db.First(&entity.Patient{}, "id = ?", payer.ID).Error)
}

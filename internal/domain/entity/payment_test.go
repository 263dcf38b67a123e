package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusIsValid(t *testing.T) {
	assert.True(t, PaymentStatusPending.IsValid())
	assert.True(t, PaymentStatusSuccess.IsValid())
	assert.True(t, PaymentStatusFailed.IsValid())
	assert.False(t, PaymentStatus("REFUNDED").IsValid())
	assert.False(t, PaymentStatus("").IsValid())
}

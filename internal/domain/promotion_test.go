package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromotion_Validate(t *testing.T) {
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	valid := &Promotion{StartDate: start, EndDate: start.AddDate(0, 1, 0), Budget: NumericFromFloat(100)}
	assert.NoError(t, valid.Validate())

	inverted := &Promotion{StartDate: start, EndDate: start.AddDate(0, 0, -1)}
	assert.ErrorIs(t, inverted.Validate(), ErrPromotionInvalidDateRange)

	negative := &Promotion{StartDate: start, EndDate: start, Budget: NumericFromFloat(-1)}
	assert.ErrorIs(t, negative.Validate(), ErrPromotionNegativeBudget)
}

func TestPromotion_CicloDeVida(t *testing.T) {
	now := time.Date(2024, 8, 20, 9, 0, 0, 0, time.UTC)

	planned := &Promotion{Status: PromotionStatusPlanned, StartDate: time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)}
	assert.True(t, planned.CanTransitionTo(PromotionStatusActive))
	assert.False(t, planned.CanTransitionTo(PromotionStatusCompleted))
	assert.True(t, planned.DueForActivation(now))

	future := &Promotion{Status: PromotionStatusPlanned, StartDate: time.Date(2024, 8, 21, 0, 0, 0, 0, time.UTC)}
	assert.False(t, future.DueForActivation(now))

	active := &Promotion{Status: PromotionStatusActive, StartDate: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)}
	assert.False(t, active.DueForActivation(now))
	assert.True(t, active.CanTransitionTo(PromotionStatusCompleted))
	assert.False(t, active.DueForCompletion(now))

	volume := 1500
	ended := &Promotion{Status: PromotionStatusActive, EndDate: time.Date(2024, 8, 19, 0, 0, 0, 0, time.UTC), ActualVolume: &volume}
	assert.True(t, ended.DueForCompletion(now))

	// Sem volume real a promoção ainda não foi fechada
	open := &Promotion{Status: PromotionStatusActive, EndDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}
	assert.False(t, open.DueForCompletion(now))

	completed := &Promotion{Status: PromotionStatusCompleted}
	assert.False(t, completed.CanTransitionTo(PromotionStatusActive))
}

func TestDeduction_AgeAt(t *testing.T) {
	deduction := &Deduction{SubmittedDate: time.Date(2024, 8, 1, 18, 0, 0, 0, time.UTC)}

	assert.Equal(t, 19, deduction.AgeAt(time.Date(2024, 8, 20, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, deduction.AgeAt(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, (&Deduction{}).AgeAt(time.Now()))
}

package domain_test

import (
	"testing"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePreviousReading(t *testing.T) {
	initial := dec("420")
	latest := &domain.MeterReading{Reading: dec("610")}

	tests := []struct {
		name    string
		latest  *domain.MeterReading
		initial *decimal.Decimal
		want    string
	}{
		{name: "latest reading wins", latest: latest, want: "610"},
		{name: "latest reading wins over initial", latest: latest, initial: &initial, want: "610"},
		{name: "falls back to initial", initial: &initial, want: "420"},
		{name: "falls back to itself", want: "650"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ResolvePreviousReading(tt.latest, tt.initial, dec("650"))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestMeterReading_ApplyBaseline(t *testing.T) {
	fixedCost := dec("2.5")

	first := domain.MeterReading{Reading: dec("500")}
	first.ApplyBaseline(domain.ResolvePreviousReading(nil, nil, first.Reading), fixedCost)
	require.NotNil(t, first.Consumption)
	assert.True(t, first.Consumption.IsZero())
	assert.True(t, first.Cost.IsZero())

	second := domain.MeterReading{Reading: dec("650")}
	second.ApplyBaseline(domain.ResolvePreviousReading(&first, nil, second.Reading), fixedCost)
	require.NotNil(t, second.PreviousReading)
	assert.True(t, dec("500").Equal(*second.PreviousReading))
	assert.True(t, dec("150").Equal(*second.Consumption))
	assert.True(t, dec("375").Equal(*second.Cost))
}

func TestShift(t *testing.T) {
	assert.True(t, domain.ShiftMorning.IsValid())
	assert.True(t, domain.ShiftNight.IsValid())
	assert.False(t, domain.Shift(3).IsValid())
	assert.Equal(t, "night", domain.ShiftNight.String())
}

func TestRecyclingOperation_StaffAssignments(t *testing.T) {
	op := domain.RecyclingOperation{ManagerID: strPtr("m1"), PackerID: strPtr("p1")}

	got := op.StaffAssignments()

	require.Len(t, got, 3)
	assert.Equal(t, domain.RoleManager, got[0].Role)
	assert.Equal(t, "m1", *got[0].StaffID)
	assert.Equal(t, domain.RoleOperator, got[1].Role)
	assert.Nil(t, got[1].StaffID)
	assert.Equal(t, domain.RolePacker, got[2].Role)
}

func strPtr(s string) *string {
	return &s
}

package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		expected float64
		class    BMIClass
	}{
		{"normal", 70, 170, 24.22, BMINormal},
		{"underweight", 50, 170, 17.30, BMIUnderweight},
		{"overweight", 90, 170, 31.14, BMIOverweight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bmi, err := BMI(tt.weight, tt.height)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, bmi, 0.01)
			assert.Equal(t, tt.class, ClassifyBMI(bmi))
		})
	}
}

func TestBMI_RejectsNonPositiveHeight(t *testing.T) {
	for _, h := range []float64{0, -170} {
		_, err := BMI(70, h)
		assert.ErrorIs(t, err, ErrInvalidHeight)
	}
}

func TestBMI_Monotonic(t *testing.T) {
	prev, err := BMI(40, 170)
	require.NoError(t, err)
	for w := 41.0; w <= 150; w++ {
		next, err := BMI(w, 170)
		require.NoError(t, err)
		assert.Greater(t, next, prev, "bmi must increase with weight")
		prev = next
	}

	prev, err = BMI(70, 120)
	require.NoError(t, err)
	for h := 121.0; h <= 220; h++ {
		next, err := BMI(70, h)
		require.NoError(t, err)
		assert.Less(t, next, prev, "bmi must decrease with height")
		prev = next
	}
}

func TestClassifyBMI_Boundaries(t *testing.T) {
	assert.Equal(t, BMIUnderweight, ClassifyBMI(18.49))
	assert.Equal(t, BMINormal, ClassifyBMI(18.5))
	assert.Equal(t, BMINormal, ClassifyBMI(24.99))
	assert.Equal(t, BMIOverweight, ClassifyBMI(25.0))
}

func TestBasalEnergyExpenditure(t *testing.T) {
	bee, err := BasalEnergyExpenditure(70, 170, 30)
	require.NoError(t, err)
	// 700 + 1062.5 - 150 + 5
	assert.InDelta(t, 1617.5, bee, 1e-9)

	older, err := BasalEnergyExpenditure(70, 170, 60)
	require.NoError(t, err)
	assert.InDelta(t, bee-150, older, 1e-9)

	_, err = BasalEnergyExpenditure(70, 0, 30)
	assert.ErrorIs(t, err, ErrInvalidHeight)
	_, err = BasalEnergyExpenditure(0, 170, 30)
	assert.ErrorIs(t, err, ErrInvalidWeight)
	_, err = BasalEnergyExpenditure(70, 170, -1)
	assert.ErrorIs(t, err, ErrInvalidAge)
}

func TestTotalEnergyExpenditure(t *testing.T) {
	for _, level := range ActivityLevels {
		factor, err := level.Factor()
		require.NoError(t, err)

		tee, err := TotalEnergyExpenditure(1000, factor)
		require.NoError(t, err)
		assert.InDelta(t, 1000*factor, tee, 1e-9)
	}

	_, err := TotalEnergyExpenditure(1000, 1.3)
	assert.ErrorIs(t, err, ErrUnknownActivityLevel)

	_, err = ActivityLevel("couch").Factor()
	assert.ErrorIs(t, err, ErrUnknownActivityLevel)
}

func TestMacroTargets(t *testing.T) {
	m := MacroTargets(80, 2.0, 1.0, 2000)
	assert.InDelta(t, 160, m.ProteinG, 1e-9)
	assert.InDelta(t, 80, m.FatG, 1e-9)
	assert.InDelta(t, 160, m.CarbG, 1e-9)
	assert.False(t, m.NegativeCarbs())
}

func TestMacroTargets_NegativeCarbsNotClamped(t *testing.T) {
	m := MacroTargets(100, 3.0, 2.0, 2000)
	// (2000 - 1200 - 1800) / 4
	assert.InDelta(t, -250, m.CarbG, 1e-9)
	assert.True(t, m.NegativeCarbs())
}

func TestAssess(t *testing.T) {
	a, err := Assess(Input{
		WeightKg:      70,
		HeightCm:      170,
		AgeYears:      30,
		Activity:      ModeratelyActive,
		ProteinGPerKg: 2.0,
		FatGPerKg:     1.0,
	})
	require.NoError(t, err)

	assert.Equal(t, BMINormal, a.BMIClass)
	assert.InDelta(t, 1617.5, a.BEE, 1e-9)
	assert.InDelta(t, 1.55, a.ActivityFactor, 1e-9)
	assert.InDelta(t, 1617.5*1.55, a.TEE, 1e-9)
	assert.InDelta(t, 140, a.ProteinG, 1e-9)
	assert.InDelta(t, 70, a.FatG, 1e-9)
	assert.InDelta(t, (a.TEE-560-630)/4, a.CarbG, 1e-9)
}

func TestAssess_PropagatesErrors(t *testing.T) {
	_, err := Assess(Input{WeightKg: 70, HeightCm: 0, AgeYears: 30, Activity: Sedentary})
	assert.ErrorIs(t, err, ErrInvalidHeight)

	_, err = Assess(Input{WeightKg: 70, HeightCm: 170, AgeYears: 30, Activity: "unknown"})
	assert.ErrorIs(t, err, ErrUnknownActivityLevel)
}

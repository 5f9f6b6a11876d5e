package nutrition

// Input is what a consultation collects to derive every metric at once.
type Input struct {
	WeightKg      float64
	HeightCm      float64
	AgeYears      int
	Activity      ActivityLevel
	ProteinGPerKg float64
	FatGPerKg     float64
}

type Assessment struct {
	BMI            float64
	BMIClass       BMIClass
	BEE            float64
	ActivityFactor float64
	TEE            float64
	Macros
}

// Assess chains BMI, BEE, TEE and macro targets.
func Assess(in Input) (Assessment, error) {
	bmi, err := BMI(in.WeightKg, in.HeightCm)
	if err != nil {
		return Assessment{}, err
	}

	bee, err := BasalEnergyExpenditure(in.WeightKg, in.HeightCm, in.AgeYears)
	if err != nil {
		return Assessment{}, err
	}

	factor, err := in.Activity.Factor()
	if err != nil {
		return Assessment{}, err
	}

	tee, err := TotalEnergyExpenditure(bee, factor)
	if err != nil {
		return Assessment{}, err
	}

	return Assessment{
		BMI:            bmi,
		BMIClass:       ClassifyBMI(bmi),
		BEE:            bee,
		ActivityFactor: factor,
		TEE:            tee,
		Macros:         MacroTargets(in.WeightKg, in.ProteinGPerKg, in.FatGPerKg, tee),
	}, nil
}

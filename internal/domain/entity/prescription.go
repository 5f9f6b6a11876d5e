package entity

// Prescription is one consultation's assessment: the measurements taken, the
// targets derived from them and the meal plan handed to the patient.
// PatientID is not checked against the patients table.
type Prescription struct {
	ID             int64
	PatientID      int64
	WeightKg       float64
	HeightCm       float64
	Age            int
	ActivityFactor float64
	BMI            float64
	BEE            float64
	TEE            float64
	ProteinG       float64
	FatG           float64
	CarbG          float64
	MealPlan       string
	CreatedAt      string
}

const DefaultMealPlan = "no meal plan recorded"

// PrescriptionTimestampLayout formats Prescription.CreatedAt.
const PrescriptionTimestampLayout = "2006-01-02 15:04"

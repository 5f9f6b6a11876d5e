package entity

// Patient is a fully normalized patient record. Optional attributes that are
// NULL in storage, or absent from an older table, carry the defaults below.
type Patient struct {
	ID              int64
	Name            string
	Age             int
	Goal            string
	ClinicalHistory string
	LabResults      string
	RegisteredAt    string
}

// PatientFilter narrows a patient listing. The zero value matches every row.
type PatientFilter struct {
	Name string
}

// Defaults substituted at the store read boundary.
const (
	DefaultAge             = 0
	DefaultGoal            = "not informed"
	DefaultClinicalHistory = "no restriction known"
	DefaultLabResults      = "no lab results on file"
	UnknownTimestamp       = "unknown"
)

// Goal labels offered by the intake form. Storage accepts any text.
const (
	GoalWeightLoss  = "weight loss"
	GoalHypertrophy = "hypertrophy"
	GoalHealth      = "health"
	GoalPerformance = "performance"
)

// RegistrationDateLayout formats Patient.RegisteredAt.
const RegistrationDateLayout = "2006-01-02"

package submission

// Payload is the structured form submission accepted at the public entry
// point. Field names mirror the browser form's wire names.
type Payload struct {
	Email                  string   `json:"email"`
	FullName               string   `json:"fullName"`
	Office                 string   `json:"office"`
	OtherOfficeAndPosition string   `json:"otherOfficesAndPosition"`
	Position               string   `json:"position"`
	SalaryGrade            string   `json:"salaryGrade"`
	TypeOfLeave            string   `json:"typeOfLeave"`
	VacationPrivilegeSpec  string   `json:"vacationSpecialPrivilegeLeaveSpecifications"`
	AbroadSpec             string   `json:"abroadSpecification"`
	SickLeaveSpec          string   `json:"sickLeaveSpecification"`
	InHospitalSpec         string   `json:"inHospitalSpecification"`
	OutpatientSpec         string   `json:"outpatientSpecification"`
	WomenBenefitsSpec      string   `json:"specialLeaveBenefitsForWomenSpecification"`
	StudyLeaveSpec         string   `json:"studyLeaveSpecification"`
	OtherSpec              string   `json:"otherSpecification"`
	OtherPurposeSpec       string   `json:"otherPurposeSpecification"`
	DateSelectionMode      string   `json:"dateSelectionMode"`
	SingleDate             string   `json:"singleDate"`
	StartDate              string   `json:"startDate"`
	EndDate                string   `json:"endDate"`
	Dates                  []string `json:"dates"`
}

// Receipt reports what a successful submission persisted.
type Receipt struct {
	Row       int    `json:"row"`
	RangeText string `json:"inclusiveDates"`
	Duration  string `json:"duration"`
}

const (
	ModeSingle   = "single"
	ModeRange    = "range"
	ModeMultiple = "multiple"
)

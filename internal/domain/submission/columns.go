package submission

// Columns is the canonical header row of the applications sheet. The order
// matches the 21-column row layout the export step reads back; the wordy
// titles are the original form's question titles, which is why the export
// side resolves them through normalized-header candidates instead of exact
// string comparison.
func Columns() []string {
	return []string{
		"Timestamp",
		"Email Address",
		"Office/Department",
		"Last Name",
		"First Name",
		"Middle Name",
		"Position",
		"Salary Grade",
		"Type of Leave to be Avail of",
		"Vacation/Special Privilege Leave Specification",
		"Specify the country if you selected \"Abroad\" from the previous question",
		"Specify if the employee is an In Hospital or Outpatient",
		"Please specify the nature of the illness requiring the employee's inpatient hospitalization",
		"Please specify the medical condition for which the employee is receiving outpatient treatment.",
		"Special Leave Benefits for Women Specification",
		"Specify the reason of study leave within the option given",
		"Specify which type of leave where the employee want to avail",
		"What the purpose of the employee on availing the leave",
		"Raw Date List",
		"Inclusive Dates",
		"Duration",
	}
}

package report

// Definition expands one abbreviation used in the report headers.
type Definition struct {
	Abbreviation string
	Phrase       string
}

// Definitions returns the abbreviation table in display order.
func Definitions() []Definition {
	return []Definition{
		{"DME", "Development Monthly Effort"},
		{"TME", "Total Monthly Effort"},
		{"DYE", "Development Yearly Effort"},
		{"TYE", "Total Yearly Effort"},
		{"DE", "Development Effort"},
		{"TE", "Total Effort"},
	}
}

package domain

// Scholarship is one assistant-generated scholarship listing. All prose
// fields carry both locales so the client can switch languages without a
// second fetch.
type Scholarship struct {
	ID            int      `json:"id"`
	Title         Text     `json:"title"`
	University    string   `json:"university"`
	Country       Text     `json:"country"`
	CountryCode   string   `json:"countryCode"`
	Deadline      string   `json:"deadline"`
	Level         Text     `json:"level"`
	Specialty     Text     `json:"specialty"`
	IsOpen        bool     `json:"isOpen"`
	IsOpeningSoon bool     `json:"isOpeningSoon"`
	Summary       Text     `json:"summary"`
	Requirements  TextList `json:"requirements"`
	Benefits      TextList `json:"benefits"`
	ApplyLink     string   `json:"applyLink"`
}

// ScholarshipFilters is the fixed search vocabulary offered to clients.
type ScholarshipFilters struct {
	Specialties []string `json:"specialties"`
	Levels      []string `json:"levels"`
}

// SearchFilters returns the catalogue of specialty and level filters.
func SearchFilters() ScholarshipFilters {
	return ScholarshipFilters{
		Specialties: []string{
			"STEM Fields", "Development-Related Fields", "All Fields", "Engineering",
			"Technology", "Sustainable Development", "Arts & Humanities",
			"Business & Economics", "Health", "Global Affairs", "Medicine",
		},
		Levels: []string{"Bachelors", "Masters", "PhD", "Masters/PhD", "Bachelors/Masters"},
	}
}

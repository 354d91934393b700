package holidayservice

// Holiday праздник в формате публичного API (date.nager.at)
type Holiday struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Global      bool     `json:"global"`
	Types       []string `json:"types"`
}

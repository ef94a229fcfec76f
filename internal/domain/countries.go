package domain

import "strings"

// Country is one entry of the location picker
type Country struct {
	Code string
	Name string
	Flag string
}

// Label is what the picker shows for the country
func (c Country) Label() string {
	return c.Flag + " " + c.Name
}

// Countries is the fixed set of locations the search service understands
var Countries = []Country{
	{Code: "BR", Name: "Brazil", Flag: "🇧🇷"},
	{Code: "US", Name: "USA", Flag: "🇺🇸"},
	{Code: "CAN", Name: "Canada", Flag: "🇨🇦"},
	{Code: "GER", Name: "Germany", Flag: "🇩🇪"},
	{Code: "FRA", Name: "France", Flag: "🇫🇷"},
	{Code: "UK", Name: "UK", Flag: "🇬🇧"},
}

// LookupCountry finds a country by code, ignoring case
func LookupCountry(code string) (Country, bool) {
	for _, c := range Countries {
		if strings.EqualFold(c.Code, strings.TrimSpace(code)) {
			return c, true
		}
	}
	return Country{}, false
}

// CountryIndex returns the position of code in Countries, or -1
func CountryIndex(code string) int {
	for i, c := range Countries {
		if strings.EqualFold(c.Code, code) {
			return i
		}
	}
	return -1
}

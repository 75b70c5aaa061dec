package util

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HolidayAPIData is a helper struct for parsing JSON from the holiday API
type HolidayAPIData struct {
	Date              string `json:"holiday_date"`
	Name              string `json:"holiday_name"`
	IsNationalHoliday bool   `json:"is_national_holiday"`
}

// FetchNationalHolidays pulls the national holidays of a year from the
// external holiday API. Keys of the returned map are "2006-01-02" dates,
// values are the holiday names.
func FetchNationalHolidays(baseURL, year string) (map[string]string, error) {
	resp, err := http.Get(baseURL + "?year=" + year)
	if err != nil {
		return nil, fmt.Errorf("failed to reach holiday API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var rawHolidays []HolidayAPIData
	if err := json.Unmarshal(body, &rawHolidays); err != nil {
		return nil, fmt.Errorf("failed to decode holiday API response: %w", err)
	}

	holidays := make(map[string]string)
	for _, rawHoliday := range rawHolidays {
		if rawHoliday.IsNationalHoliday {
			holidays[rawHoliday.Date] = rawHoliday.Name
		}
	}
	return holidays, nil
}

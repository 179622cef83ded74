package utils

import "time"

// ParseDate interpreta datas no formato 2006-01-02; vazio retorna a data zero
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ReferenceTime devolve a data de referência informada ou o instante atual
func ReferenceTime(date *time.Time, now time.Time) time.Time {
	if date == nil || date.IsZero() {
		return now
	}
	return *date
}

package utils

import "time"

// serialEpoch é a época usada pelas planilhas para datas seriais (1899-12-30).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateToSerial converte uma data para o número serial de planilha
// (dias desde 1899-12-30).
func DateToSerial(date time.Time) float64 {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return float64(int(day.Sub(serialEpoch).Hours() / 24))
}

// SerialToDate é a operação inversa de DateToSerial.
func SerialToDate(serial float64) time.Time {
	return serialEpoch.AddDate(0, 0, int(serial))
}

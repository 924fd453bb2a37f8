package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// ReadLoginsFromCSV reads GitHub logins from a CSV file, one per line. Only
// the first column is used. Logins are passed through as written; the API
// rejects what it rejects.
func ReadLoginsFromCSV(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	var logins []string
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		login := strings.TrimSpace(record[0])
		if login == "" {
			continue
		}
		logins = append(logins, login)
	}

	return logins, nil
}

package utils

import "time"

// ISOTimestampLayout reproduz o Date.toISOString: UTC, milissegundos e sufixo Z.
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

// SupabaseTimestampLayout é o formato em que o PostgREST devolve timestamptz:
// microssegundos sem zeros à direita e offset "+00:00".
const SupabaseTimestampLayout = "2006-01-02T15:04:05.999999-07:00"

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

// ISOTimestamp formata t no layout ISOTimestampLayout.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}

// SupabaseTimestamp formata t em UTC no layout SupabaseTimestampLayout.
func SupabaseTimestamp(t time.Time) string {
	return t.UTC().Format(SupabaseTimestampLayout)
}

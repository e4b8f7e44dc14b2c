package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// PrettyJson formata qualquer valor (ou bytes JSON) com indentação, para logs de diagnóstico.
func PrettyJson(in any) string {
	var value any = in

	if raw, ok := in.([]byte); ok {
		if err := jsoniter.Unmarshal(raw, &value); err != nil {
			return string(raw)
		}
	}

	out, err := jsoniter.MarshalIndent(value, "", "  ")
	if err != nil {
		return ""
	}

	return string(out)
}

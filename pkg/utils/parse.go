package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// SafeFloat converte qualquer valor para float64, aceitando vírgula como
// separador decimal. Retorna o default em caso de falha.
func SafeFloat(v interface{}, def float64) float64 {
	switch n := v.(type) {
	case nil:
		return def
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}

	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	if s == "" {
		return def
	}

	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}

	return f
}

// SafeInt converte qualquer valor para int truncando a parte decimal.
// Retorna o default em caso de falha.
func SafeInt(v interface{}, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}

	if v == nil {
		return def
	}

	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	if s == "" {
		return def
	}

	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}

	return int(f)
}

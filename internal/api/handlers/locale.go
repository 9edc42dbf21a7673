package handlers

import (
	"net/http"
	"strings"
)

// RequestLocale извлекает локаль клиента: параметр locale имеет приоритет
// над заголовком Accept-Language. Пустая строка означает "локаль не указана"
func RequestLocale(r *http.Request) string {
	if locale := r.URL.Query().Get("locale"); locale != "" {
		return strings.ToLower(locale)
	}

	header := r.Header.Get("Accept-Language")
	if header == "" {
		return ""
	}

	// Берем первичный субтег первого языка: "ru-RU,ru;q=0.9" -> "ru"
	first := strings.Split(header, ",")[0]
	first = strings.Split(first, ";")[0]
	first = strings.Split(strings.TrimSpace(first), "-")[0]
	return strings.ToLower(first)
}

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestLocale(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		acceptLanguage string
		want           string
	}{
		{name: "query parameter wins", query: "locale=RU", acceptLanguage: "de-DE", want: "ru"},
		{name: "accept-language fallback", acceptLanguage: "ru-RU,ru;q=0.9,en;q=0.8", want: "ru"},
		{name: "plain language tag", acceptLanguage: "en", want: "en"},
		{name: "region is stripped", acceptLanguage: "pt-BR", want: "pt"},
		{name: "nothing specified", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/api/v1/salons/1"
			if tt.query != "" {
				url += "?" + tt.query
			}
			r := httptest.NewRequest("GET", url, nil)
			if tt.acceptLanguage != "" {
				r.Header.Set("Accept-Language", tt.acceptLanguage)
			}

			assert.Equal(t, tt.want, RequestLocale(r))
		})
	}
}

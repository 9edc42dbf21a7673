package i18n

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// Translations переводы атрибутов сущности: attribute -> locale -> text
// Хранится одной jsonb-колонкой translations
type Translations map[string]map[string]string

// Localize возвращает перевод атрибута attribute для локали locale
// Порядок поиска: запрошенная локаль -> fallback-локаль -> первая доступная
// Возвращает пустую строку, если переводов нет вообще
func (t Translations) Localize(attribute, locale, fallback string) string {
	byLocale, ok := t[attribute]
	if !ok || len(byLocale) == 0 {
		return ""
	}

	if text, ok := byLocale[locale]; ok {
		return text
	}
	if text, ok := byLocale[fallback]; ok {
		return text
	}

	// Берем первую по алфавиту локаль, чтобы результат был детерминированным
	locales := make([]string, 0, len(byLocale))
	for l := range byLocale {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return byLocale[locales[0]]
}

// Set записывает перевод атрибута для локали
func (t Translations) Set(attribute, locale, text string) {
	if t[attribute] == nil {
		t[attribute] = make(map[string]string)
	}
	t[attribute][locale] = text
}

// Has проверяет наличие перевода атрибута для локали
func (t Translations) Has(attribute, locale string) bool {
	_, ok := t[attribute][locale]
	return ok
}

// Value реализует driver.Valuer для записи jsonb
func (t Translations) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan реализует sql.Scanner для чтения jsonb
func (t *Translations) Scan(src interface{}) error {
	if src == nil {
		*t = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("i18n: unsupported source type %T", src)
	}

	return json.Unmarshal(data, t)
}

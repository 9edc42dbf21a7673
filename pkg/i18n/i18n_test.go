package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations_Localize(t *testing.T) {
	tr := Translations{
		"description": {
			"en": "Cozy salon downtown",
			"ru": "Уютный салон в центре",
		},
		"bio": {
			"de": "Friseur mit 10 Jahren Erfahrung",
		},
	}

	t.Run("requested locale", func(t *testing.T) {
		assert.Equal(t, "Уютный салон в центре", tr.Localize("description", "ru", "en"))
	})

	t.Run("fallback locale", func(t *testing.T) {
		assert.Equal(t, "Cozy salon downtown", tr.Localize("description", "fr", "en"))
	})

	t.Run("first available when neither matches", func(t *testing.T) {
		assert.Equal(t, "Friseur mit 10 Jahren Erfahrung", tr.Localize("bio", "fr", "en"))
	})

	t.Run("missing attribute", func(t *testing.T) {
		assert.Equal(t, "", tr.Localize("position", "ru", "en"))
	})

	t.Run("nil map", func(t *testing.T) {
		var nilTr Translations
		assert.Equal(t, "", nilTr.Localize("description", "ru", "en"))
	})
}

func TestTranslations_SetHas(t *testing.T) {
	tr := Translations{}
	tr.Set("name", "en", "Scissors & Co")

	assert.True(t, tr.Has("name", "en"))
	assert.False(t, tr.Has("name", "ru"))
	assert.Equal(t, "Scissors & Co", tr.Localize("name", "en", "en"))
}

func TestTranslations_SQL(t *testing.T) {
	tr := Translations{"name": {"en": "Scissors & Co"}}

	v, err := tr.Value()
	require.NoError(t, err)

	var decoded Translations
	require.NoError(t, decoded.Scan(v))
	assert.Equal(t, tr, decoded)

	require.NoError(t, decoded.Scan(nil))
	assert.Nil(t, decoded)

	assert.Error(t, decoded.Scan(42))
}

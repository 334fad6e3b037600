package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations(t *testing.T) {
	t.Run("resolves embedded english messages", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		msg := trans.GetMessage("nothing_to_do", 0, nil)
		assert.Equal(t, "No pending changes detected. Nothing to do.", msg)
	})

	t.Run("resolves spanish overrides", func(t *testing.T) {
		trans, err := NewTranslations("es", "")
		require.NoError(t, err)

		msg := trans.GetMessage("nothing_to_do", 0, nil)
		assert.Equal(t, "No se detectaron cambios pendientes. Nada para hacer.", msg)
	})

	t.Run("spanish falls back to english for untranslated keys", func(t *testing.T) {
		trans, err := NewTranslations("es", "")
		require.NoError(t, err)

		msg := trans.GetMessage("describe_lang_flag_usage", 0, nil)
		assert.NotEmpty(t, msg)
		assert.NotContains(t, msg, "Translation missing")
	})

	t.Run("template data is interpolated", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		msg := trans.GetMessage("linked_issue_matched", 0, map[string]interface{}{
			"Number": 42,
			"Title":  "Login broken",
		})
		assert.Contains(t, msg, "#42")
		assert.Contains(t, msg, "Login broken")
	})

	t.Run("unknown key reports the missing id", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		msg := trans.GetMessage("does_not_exist", 0, nil)
		assert.Contains(t, msg, "does_not_exist")
	})

	t.Run("switching to an unsupported language fails", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("fr"))
		assert.NoError(t, trans.SetLanguage("es"))
	})
}

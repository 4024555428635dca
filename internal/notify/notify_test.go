package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/ui/style"
)

func newTestNotifier(t *testing.T, lang string) (*Notifier, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	n, err := New(Options{Out: &buf, Styler: style.NopStyler{}, Language: lang})
	require.NoError(t, err)
	return n, &buf
}

func TestThemeChanged_PortugueseByDefault(t *testing.T) {
	tests := []struct {
		mode domain.ThemeMode
		want string
	}{
		{domain.ModeLight, "✓ Tema alterado para claro\n"},
		{domain.ModeDark, "✓ Tema alterado para escuro\n"},
		{domain.ModeSystem, "✓ Tema alterado para automático\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			n, buf := newTestNotifier(t, "")
			n.ThemeChanged(tt.mode)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEnglish(t *testing.T) {
	n, buf := newTestNotifier(t, "en")
	n.ThemeChanged(domain.ModeSystem)
	n.Error(BackupInvalid, nil)

	require.Equal(t, "✓ Theme changed to automatic\n✗ Invalid backup file\n", buf.String())
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	n, _ := newTestNotifier(t, "ja")
	require.Equal(t, "Configurações salvas com sucesso!", n.Message(SettingsSaved, nil))
}

func TestAllMessagesTranslated(t *testing.T) {
	ids := []string{
		ThemeChanged, SettingsSaved, SettingsReset, BackupExported,
		BackupImported, BackupInvalid, BackupFailed, DataCleared,
		"mode.light", "mode.dark", "mode.system",
	}

	for _, lang := range []string{"pt-BR", "en"} {
		n, _ := newTestNotifier(t, lang)
		for _, id := range ids {
			require.NotEqual(t, id, n.Message(id, map[string]any{"Mode": "x"}), "%s missing in %s", id, lang)
		}
	}
}

func TestMissingMessageReturnsID(t *testing.T) {
	n, _ := newTestNotifier(t, "en")
	require.Equal(t, "no.such.message", n.Message("no.such.message", nil))
}

func TestQuiet(t *testing.T) {
	var buf bytes.Buffer
	n, err := New(Options{Out: &buf, Quiet: true})
	require.NoError(t, err)

	n.Success(SettingsSaved, nil)
	require.Empty(t, buf.String())
}

func TestNoStylerOmitsIcon(t *testing.T) {
	var buf bytes.Buffer
	n, err := New(Options{Out: &buf, Language: "en"})
	require.NoError(t, err)

	n.Success(BackupExported, nil)
	require.Equal(t, "Backup exported.\n", buf.String())
}

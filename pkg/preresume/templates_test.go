package preresume

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/config"
)

func TestBundleRender(t *testing.T) {
	bundle := NewBundle("en")
	vars := Vars{Name: "Alex", JobTitle: "Sr Backend"}

	t.Run("fills placeholders", func(t *testing.T) {
		text, err := bundle.Render(PurposeIntro, "en", vars)

		require.NoError(t, err)
		assert.Contains(t, text, "Alex")
		assert.Contains(t, text, "Sr Backend")
		assert.NotContains(t, text, "{{")
	})

	t.Run("renders the requested language", func(t *testing.T) {
		text, err := bundle.Render(PurposeFollowup, "ru", vars)

		require.NoError(t, err)
		assert.Contains(t, text, "Alex")
		assert.Contains(t, text, "Напоминаю")
	})

	t.Run("falls back to the default language", func(t *testing.T) {
		text, err := bundle.Render("answer_salary", "ru", vars)

		require.NoError(t, err)
		assert.Contains(t, text, "Compensation")
	})

	t.Run("unknown purpose", func(t *testing.T) {
		_, err := bundle.Render("victory_lap", "en", vars)

		assert.ErrorIs(t, err, ErrNoTemplate)
	})

	t.Run("missing placeholder values render empty", func(t *testing.T) {
		text, err := bundle.Render(PurposeIntro, "en", Vars{Name: "Alex"})

		require.NoError(t, err)
		assert.NotContains(t, text, "{{job_title}}")
	})
}

func TestBundleFallbackToAnyLanguage(t *testing.T) {
	// Default language "ru" with an en-only purpose still renders.
	bundle := NewBundle("ru")

	text, err := bundle.Render("answer_timeline", "de", Vars{})

	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestLoadBundleOverlaysBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
templates:
  intro:
    en: "Custom intro for {{name}}"
  onboarding_note:
    en: "Welcome aboard, {{name}}!"
`), 0o644))

	bundle, err := LoadBundle(path, "en")
	require.NoError(t, err)

	intro, err := bundle.Render(PurposeIntro, "en", Vars{Name: "Alex"})
	require.NoError(t, err)
	assert.Equal(t, "Custom intro for Alex", intro)

	// Untouched built-ins survive the overlay.
	ack, err := bundle.Render(PurposeResumeAck, "en", Vars{Name: "Alex"})
	require.NoError(t, err)
	assert.Contains(t, ack, "Alex")

	custom, err := bundle.Render("onboarding_note", "en", Vars{Name: "Alex"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome aboard, Alex!", custom)
}

func TestLoadBundleErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBundle(filepath.Join(t.TempDir(), "absent.yaml"), "en")

		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("templates: ["), 0o644))

		_, err := LoadBundle(path, "en")

		assert.Error(t, err)
	})
}

func TestTemplateStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates:\n  intro:\n    en: \"v1 {{name}}\"\n"), 0o644))

	ts, err := NewTemplateStore(&config.PreResumeConfig{
		DefaultLanguage: "en",
		TemplatePath:    path,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ts.Close() })

	text, err := ts.Bundle().Render(PurposeIntro, "en", Vars{Name: "Alex"})
	require.NoError(t, err)
	assert.Equal(t, "v1 Alex", text)

	require.NoError(t, os.WriteFile(path, []byte("templates:\n  intro:\n    en: \"v2 {{name}}\"\n"), 0o644))
	require.NoError(t, ts.Reload())

	text, err = ts.Bundle().Render(PurposeIntro, "en", Vars{Name: "Alex"})
	require.NoError(t, err)
	assert.Equal(t, "v2 Alex", text)
}

func TestTemplateStoreWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates:\n  intro:\n    en: \"v1\"\n"), 0o644))

	ts, err := NewTemplateStore(&config.PreResumeConfig{
		DefaultLanguage: "en",
		TemplatePath:    path,
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, ts.Watch(ctx))
	t.Cleanup(func() { _ = ts.Close() })

	require.NoError(t, os.WriteFile(path, []byte("templates:\n  intro:\n    en: \"v2\"\n"), 0o644))

	assert.Eventually(t, func() bool {
		text, err := ts.Bundle().Render(PurposeIntro, "en", Vars{})
		return err == nil && text == "v2"
	}, 5*time.Second, 50*time.Millisecond)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandy1eigh007/resume-workshop-app/internal/content"
	"github.com/mandy1eigh007/resume-workshop-app/internal/validation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"content_dir": "/srv/library",
		"translations": "/srv/translations.csv",
		"limits": {"max_skills": 10},
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/srv/library", cfg.ContentDir)
	assert.Equal(t, "/srv/translations.csv", cfg.Translations)
	assert.Equal(t, 10, cfg.Limits.MaxSkills)
	assert.Zero(t, cfg.Limits.MaxJobs)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "empty path", path: "", wantErr: "config path is empty"},
		{name: "missing file", path: "/nonexistent/config.json", wantErr: "failed to read config file"},
		{name: "invalid json", path: writeConfig(t, `{ invalid json }`), wantErr: "failed to parse config JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "workshop.json"), []byte(`{"sources_dir": "packets"}`), 0o644))
	t.Chdir(dir)

	cfg, err := LoadConfig("workshop.json")
	require.NoError(t, err)
	assert.Equal(t, "packets", cfg.SourcesDir)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvContentDir, "/env/library")
	t.Setenv(EnvKeywords, " /env/keywords.yaml ")
	t.Setenv(EnvTranslations, "")
	t.Setenv(EnvVerbose, "true")

	cfg := &Config{ContentDir: "/file/library", Translations: "/file/translations.csv"}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "/env/library", cfg.ContentDir)
	assert.Equal(t, "/env/keywords.yaml", cfg.Keywords)
	assert.Equal(t, "/file/translations.csv", cfg.Translations)
	assert.True(t, cfg.Verbose)
}

func TestApplyEnv_BadBool(t *testing.T) {
	t.Setenv(EnvVerbose, "loud")

	err := (&Config{}).ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvVerbose)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "keywords.yaml")
	require.NoError(t, os.WriteFile(file, []byte("trades: {}"), 0o644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty is valid", cfg: Config{}},
		{name: "existing paths", cfg: Config{ContentDir: dir, Keywords: file}},
		{name: "missing content dir", cfg: Config{ContentDir: filepath.Join(dir, "nope")}, wantErr: "content_dir not found"},
		{name: "content dir is a file", cfg: Config{ContentDir: file}, wantErr: "content_dir is not a directory"},
		{name: "missing translations", cfg: Config{Translations: filepath.Join(dir, "t.csv")}, wantErr: "translations file not found"},
		{name: "negative limit", cfg: Config{Limits: validation.Limits{MaxSkills: -1}}, wantErr: "invalid limits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{ContentDir: "/mine", Limits: validation.Limits{MaxSkills: 8}}
	defaults := Config{ContentDir: "/default", SourcesDir: "/default/sources", Template: "/default/resume.tmpl"}

	got := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "/mine", got.ContentDir)
	assert.Equal(t, "/default/sources", got.SourcesDir)
	assert.Equal(t, "/default/resume.tmpl", got.Template)
	assert.Equal(t, 8, got.Limits.MaxSkills)
	assert.Equal(t, validation.DefaultLimits().MaxJobs, got.Limits.MaxJobs)

	// The receiver is not modified.
	assert.Empty(t, cfg.SourcesDir)
	assert.Zero(t, cfg.Limits.MaxJobs)
}

func TestContentSource(t *testing.T) {
	assert.Equal(t, "embedded", (&Config{}).ContentSource().String())

	dirSrc := (&Config{ContentDir: "/srv/library"}).ContentSource()
	assert.Equal(t, content.DirSource{Dir: "/srv/library"}, dirSrc)

	overlay, ok := (&Config{Keywords: "/k.yaml", Translations: "/t.csv"}).ContentSource().(content.OverlaySource)
	require.True(t, ok)
	assert.Equal(t, "/k.yaml", overlay.Files[content.FileKeywords])
	assert.Equal(t, "/t.csv", overlay.Files[content.FileTranslations])
	assert.Equal(t, "embedded (+2 overrides)", overlay.String())
}

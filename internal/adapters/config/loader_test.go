package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vigil/internal/adapters/config"
	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger), mockLogger
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoader_Load_DefaultsWithoutFile(t *testing.T) {
	loader, _ := newLoader(t)

	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
	assert.Empty(t, cfg.Path)
}

func TestLoader_Load_FullFile(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()

	path := createFile(t, dir, domain.ConfigFileName, `
debounce: 250ms
autoRefactor:
  visible: false
log:
  level: debug
  format: json
watch:
  skip: ["node_modules", ".git", "bin", ".git"]
`)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Debounce)
	assert.False(t, cfg.RefactorVisible)
	assert.Equal(t, domain.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, domain.LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, []string{".git", "bin", "node_modules"}, cfg.WatchSkip)
	assert.Equal(t, path, cfg.Path)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "debounce: 1s\n")

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	want := domain.DefaultConfig()
	assert.Equal(t, time.Second, cfg.Debounce)
	assert.Equal(t, want.RefactorVisible, cfg.RefactorVisible)
	assert.Equal(t, want.LogLevel, cfg.LogLevel)
	assert.Equal(t, want.LogFormat, cfg.LogFormat)
	assert.Equal(t, want.WatchSkip, cfg.WatchSkip)
}

func TestLoader_Load_EmptySkipListDisablesDefaults(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "watch:\n  skip: []\n")

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.WatchSkip)
}

func TestLoader_Load_DiscoversParentConfig(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	path := createFile(t, root, domain.ConfigFileName, "debounce: 500ms\n")

	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce)
	assert.Equal(t, path, cfg.Path)
}

func TestLoader_Load_NearestConfigWins(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "debounce: 500ms\n")

	nested := filepath.Join(root, "service")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
	createFile(t, nested, domain.ConfigFileName, "debounce: 50ms\n")

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.Debounce)
}

func TestLoader_Load_DirectoryNamedLikeConfigIsIgnored(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.ConfigFileName), domain.DirPerm))

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_UnknownLogLevelWarns(t *testing.T) {
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn(`unknown log level "verbose", using info`).Times(1)

	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "log:\n  level: verbose\n")

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.LogLevelInfo, cfg.LogLevel)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "debounce: [unclosed\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unparsable debounce",
			content: "debounce: soon\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "debounce below minimum",
			content: "debounce: 1ms\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "unknown log format",
			content: "log:\n  format: xml\n",
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			dir := t.TempDir()
			createFile(t, dir, domain.ConfigFileName, tt.content)

			cfg, err := loader.Load(dir)
			require.ErrorContains(t, err, tt.wantErr.Error())
			assert.Nil(t, cfg)
		})
	}
}

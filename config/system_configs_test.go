package config

import (
	"testing"

	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With nothing configured, the base URL falls back to the local astrology
// service address.
func TestLoadConfigs_Defaults(t *testing.T) {
	t.Setenv("ASTRO_API_URL", "")
	t.Setenv("ASTRO_API_TIMEOUT_MS", "")
	t.Setenv("STORE_BACKEND", "")

	sys, err := LoadConfigs()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5003", sys.Config.AstroAPIURL)
	assert.Equal(t, 8000, sys.Config.AstroTimeout)
	assert.Equal(t, "memory", sys.Config.StoreBackend)
}

func TestLoadConfigs_Overrides(t *testing.T) {
	t.Setenv("ASTRO_API_URL", "https://astro.example.com")
	t.Setenv("ASTRO_API_TIMEOUT_MS", "2500")

	sys, err := LoadConfigs()
	require.NoError(t, err)
	assert.Equal(t, "https://astro.example.com", sys.Config.AstroAPIURL)
	assert.Equal(t, 2500, sys.Config.AstroTimeout)
}

func TestLoadConfigs_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("ASTRO_API_TIMEOUT_MS", "soon")

	sys, err := LoadConfigs()
	require.NoError(t, err)
	assert.Equal(t, 8000, sys.Config.AstroTimeout)
}

func TestLoadRuntimeConfig_FrontendUrlList(t *testing.T) {
	t.Setenv("FRONTEND_URLS", "http://localhost:3000, https://astrologi.app")

	cfg := LoadRuntimeConfig()
	assert.Equal(t, []string{"http://localhost:3000", "https://astrologi.app"}, cfg.FrontendUrls)
}

func TestConfigManager_Swap(t *testing.T) {
	cm := NewConfigManager(&model.RuntimeConfig{DebugMode: false})
	cm.UpdateConfig(&model.RuntimeConfig{DebugMode: true})
	assert.True(t, cm.GetConfig().DebugMode)
}

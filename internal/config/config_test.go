package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{envSpecDirPrimary, envSpecDirLegacy, envGeneratedOutDir, envMaxIterations, envLogLevel} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "", cfg.SpecDir)
	assert.Equal(t, defaultGeneratedOutDir, cfg.GeneratedOutDir)
	assert.Equal(t, defaultResolverMaxIterations, cfg.ResolverMaxIterations)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
}

func TestLoadConfig_LegacyFallback(t *testing.T) {
	t.Setenv(envSpecDirPrimary, "")
	t.Setenv(envSpecDirLegacy, "/legacy/spec")
	cfg := LoadConfig()
	assert.Equal(t, "/legacy/spec", cfg.SpecDir)
}

func TestLoadConfig_PrimaryWinsOverLegacy(t *testing.T) {
	t.Setenv(envSpecDirPrimary, "/primary/spec")
	t.Setenv(envSpecDirLegacy, "/legacy/spec")
	cfg := LoadConfig()
	assert.Equal(t, "/primary/spec", cfg.SpecDir)
}

func TestLoadConfig_InvalidMaxIterationsIgnored(t *testing.T) {
	t.Setenv(envMaxIterations, "not-a-number")
	cfg := LoadConfig()
	assert.Equal(t, defaultResolverMaxIterations, cfg.ResolverMaxIterations)
}

func TestLoadConfig_MaxIterationsOverride(t *testing.T) {
	t.Setenv(envMaxIterations, "3")
	cfg := LoadConfig()
	assert.Equal(t, 3, cfg.ResolverMaxIterations)
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

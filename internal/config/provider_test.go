package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewProvider_Defaults 测试nil配置时的默认行为
func TestNewProvider_Defaults(t *testing.T) {
	provider := NewProvider(nil)

	require.NotNil(t, provider.GetLog())
	require.NotNil(t, provider.GetZKProof())
	require.Equal(t, "prod", provider.GetEnvironment())
	require.Nil(t, provider.GetAppConfig())

	require.Equal(t, "groth16", provider.GetZKProof().ProvingScheme)
}

// TestLoadAppConfig_MissingFile 测试缺失配置文件不是错误
func TestLoadAppConfig_MissingFile(t *testing.T) {
	appConfig, err := LoadAppConfig("")
	require.NoError(t, err)
	require.Nil(t, appConfig)

	appConfig, err = LoadAppConfig(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)
	require.Nil(t, appConfig)
}

// TestLoadAppConfig_ValidFile 测试加载合法配置文件
func TestLoadAppConfig_ValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"environment": "dev",
		"log": {"level": "debug"},
		"zkproof": {"proving_scheme": "plonk", "curve": "bls12-381"}
	}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	appConfig, err := LoadAppConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, appConfig)

	provider := NewProvider(appConfig)
	require.Equal(t, "dev", provider.GetEnvironment())
	require.Equal(t, "plonk", provider.GetZKProof().ProvingScheme)
	require.Equal(t, "bls12-381", provider.GetZKProof().Curve)
	require.Equal(t, "debug", provider.GetLog().Level)
}

// TestLoadAppConfig_InvalidJSON 测试非法JSON报错
func TestLoadAppConfig_InvalidJSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0600))

	_, err := LoadAppConfig(configPath)
	require.Error(t, err)
}

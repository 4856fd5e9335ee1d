// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1000", RequestTimeout: time.Minute}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:2000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:2000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

// TestBuild_DefaultsFillZeroFields verifies that defaults never override
// explicitly set values.
func TestBuild_DefaultsFillZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenDuration: time.Hour},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "dev-connector", cfg.App.TokenIssuer)
	assert.Equal(t, ":5010", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env-secret",
		"SERVER_ADDRESS":     "localhost:7000",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.TokenSignKey)
	assert.Equal(t, "localhost:7000", b.configs[0].Server.HTTPAddress)
}

func TestWithEnv_SetsError_OnInvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "forever"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_ExportsVariables(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_ISSUER=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("APP_TOKEN_ISSUER") })

	cfg, err := newConfigBuilder().withDotEnv(path).withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.App.TokenIssuer)
}

// TestWithDotEnv_DoesNotOverrideEnvironment verifies that real environment
// variables take priority over the .env file.
func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_ISSUER": "from-env"})
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_ISSUER=from-dotenv\n"), 0o600))

	cfg, err := newConfigBuilder().withDotEnv(path).withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_StoresPositionalArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-token", "abc", "posts", "list"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "abc", b.configs[0].Adapter.Token)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, []string{"posts", "list"}, cfg.Args)
}

func TestWithFlags_SetsError_OnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
}

// TestWithFlags_OverridesEnv verifies the env < flags priority.
func TestWithFlags_OverridesEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DB_DATABASE_URI": "postgres://env"})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-d", "sqlite://flag.db"}).
		build()
	require.NoError(t, err)
	assert.Equal(t, "sqlite://flag.db", cfg.Storage.DB.DSN)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_issuer": "json-issuer"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that the flag-provided path wins over
// the env-provided one.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.Version)
}

// ── load ──────────────────────────────────────────────────────────────────────

func TestLoad_AllSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"request_timeout": "5s"},
	})
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "secret",
		"CONFIG":             path,
	})

	cfg, err := load([]string{"-d", "sqlite://dev.db"})
	require.NoError(t, err)
	require.NoError(t, cfg.validate())

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "sqlite://dev.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 100*time.Hour, cfg.App.TokenDuration)
}

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

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and no layers.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
	assert.Empty(t, b.runtimes)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no layers returns an
// empty, non-nil option mapping.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Options)
	assert.Empty(t, cfg.Options)
	assert.False(t, cfg.FileLoaded)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstLayerWins verifies that earlier layers take precedence over
// later ones while keys missing from earlier layers are filled in.
func TestBuild_FirstLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers,
		Options{KeyHotWalletPrivateKey: "flag-key"},
		Options{KeyHotWalletPrivateKey: "file-key", KeyGatewayURL: "http://file:1"},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.Options[KeyHotWalletPrivateKey])
	assert.Equal(t, "http://file:1", cfg.Options[KeyGatewayURL])
}

// TestBuild_MergesRuntime verifies runtime settings are merged with the same
// precedence as options.
func TestBuild_MergesRuntime(t *testing.T) {
	b := newConfigBuilder()
	b.runtimes = append(b.runtimes,
		Runtime{LogLevel: "warn"},
		Runtime{LogLevel: "debug", LogFormat: LogFormatConsole, ExitZeroOnError: true},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Runtime.LogLevel)
	assert.Equal(t, LogFormatConsole, cfg.Runtime.LogFormat)
	assert.True(t, cfg.Runtime.ExitZeroOnError)
}

// TestBuild_RejectsUnknownLogFormat verifies runtime validation.
func TestBuild_RejectsUnknownLogFormat(t *testing.T) {
	b := newConfigBuilder()
	b.runtimes = append(b.runtimes, Runtime{LogFormat: "xml"})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRuntimeConfig)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(&Flags{}))
}

// TestWithFlags_Nil verifies that nil flags are ignored.
func TestWithFlags_Nil(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(nil)
	assert.Empty(t, b.layers)
}

// TestWithFlags_OnlySetValues verifies that unset flags produce no options.
func TestWithFlags_OnlySetValues(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(&Flags{GatewayURL: "http://flag:1"})

	require.Len(t, b.layers, 1)
	assert.Equal(t, Options{KeyGatewayURL: "http://flag:1"}, b.layers[0])
}

// TestWithFlags_ConfigPathIsExplicit verifies that --config marks the path as
// explicit.
func TestWithFlags_ConfigPathIsExplicit(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(&Flags{ConfigPath: "/etc/randgen.json"})

	assert.Equal(t, "/etc/randgen.json", b.filePath)
	assert.True(t, b.explicitPath)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("RANDGEN_GATEWAY_URL", "http://env:2")
	t.Setenv("RANDGEN_REQUEST_TIMEOUT", "5s")
	t.Setenv("RANDGEN_LOG_LEVEL", "error")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.layers, 1)
	assert.Equal(t, "http://env:2", b.layers[0][KeyGatewayURL])
	assert.Equal(t, 5*time.Second, b.layers[0][KeyRequestTimeout])
	assert.Equal(t, "error", b.runtimes[0].LogLevel)
}

// TestWithEnv_InvalidValue verifies that a malformed env value sets b.err.
func TestWithEnv_InvalidValue(t *testing.T) {
	t.Setenv("RANDGEN_VOTE_INTERVAL", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
}

// TestWithEnv_FlagPathWins verifies that RANDGEN_CONFIG does not replace a
// path given by flag.
func TestWithEnv_FlagPathWins(t *testing.T) {
	t.Setenv("RANDGEN_CONFIG", "/from/env.json")

	b := newConfigBuilder()
	b.withFlags(&Flags{ConfigPath: "/from/flag.json"}).withEnv()

	assert.Equal(t, "/from/flag.json", b.filePath)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_MissingDefaultFile verifies that a missing file at the default
// location leaves the configuration empty instead of failing.
func TestWithFile_MissingDefaultFile(t *testing.T) {
	b := newConfigBuilder()
	b.withFile()

	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
	assert.False(t, b.fileLoaded)
	assert.Equal(t, DefaultFilePath(), b.filePath)
}

// TestWithFile_MissingExplicitFile verifies that a missing file given
// explicitly is an error.
func TestWithFile_MissingExplicitFile(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(&Flags{ConfigPath: filepath.Join(t.TempDir(), "absent.json")}).withFile()

	assert.Error(t, b.err)
}

// TestWithFile_AppendsConfig verifies that a valid file is parsed and appended.
func TestWithFile_AppendsConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		KeyHotWalletPrivateKey: "file-key",
		"rpc_url":              "https://rpc.example",
	})

	b := newConfigBuilder()
	b.withFlags(&Flags{ConfigPath: path}).withFile()

	require.NoError(t, b.err)
	assert.True(t, b.fileLoaded)
	require.Len(t, b.layers, 2)
	assert.Equal(t, "file-key", b.layers[1][KeyHotWalletPrivateKey])
	assert.Equal(t, "https://rpc.example", b.layers[1]["rpc_url"])
}

// TestWithFile_Malformed verifies that an undecodable file is an error.
func TestWithFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o600))

	b := newConfigBuilder()
	b.withFlags(&Flags{ConfigPath: path}).withFile()

	assert.Error(t, b.err)
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_Precedence verifies flags beat env and env beats the file.
func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		KeyGatewayURL:          "http://file:3",
		KeyRequestTimeout:      "9s",
		KeyHotWalletPrivateKey: "file-key",
	})
	t.Setenv("RANDGEN_REQUEST_TIMEOUT", "4s")
	t.Setenv("RANDGEN_HOT_WALLET_PRIVATE_KEY", "env-key")

	cfg, err := Load(&Flags{ConfigPath: path, GatewayURL: "http://flag:1"})
	require.NoError(t, err)

	assert.True(t, cfg.FileLoaded)
	assert.Equal(t, path, cfg.FilePath)
	assert.Equal(t, "http://flag:1", cfg.Options[KeyGatewayURL])
	assert.Equal(t, 4*time.Second, cfg.Options[KeyRequestTimeout])
	assert.Equal(t, "env-key", cfg.Options[KeyHotWalletPrivateKey])
}

// TestLoad_NoSources verifies that loading without any source gives an empty
// configuration.
func TestLoad_NoSources(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Options)
	assert.False(t, cfg.FileLoaded)
}

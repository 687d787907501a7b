package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tronicboy1/sql-paginatorr/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
app:
  name: sql-paginator
  version: 0.2.0
  env: test

server:
  port: 18080
  shutdown_timeout: 3

logger:
  level: debug
  env: staging
  output_target: stderr
  time_format: rfc3339

paging:
  max_pairs: 500
`
	path := writeTempConfig(t, yaml)
	t.Setenv("APP_PAGING_DEFAULT_PAGE_SIZE", "25")
	t.Setenv("APP_SERVER_PORT", "19090")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.2.0", cfg.App.Version)
	assert.Equal(t, 19090, cfg.Server.Port, "env must override yaml")
	assert.Equal(t, 3, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout, "default must survive")
	assert.Equal(t, uint(500), cfg.Paging.MaxPairs)
	assert.Equal(t, uint(25), cfg.Paging.DefaultPageSize)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "stderr", cfg.Logger.OutputTarget)
	assert.Equal(t, "rfc3339", cfg.Logger.TimeFormat)
}

func TestConfigLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sql-paginator", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, uint(10000), cfg.Paging.MaxPairs)
	assert.Equal(t, uint(50), cfg.Paging.DefaultPageSize)
}

func TestConfigLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.App.Env)
}

func TestConfigLoad_InvalidValuesFail(t *testing.T) {
	cases := map[string]string{
		"zero_max_pairs": `
paging:
  max_pairs: 0
`,
		"port_out_of_range": `
server:
  port: 70000
`,
		"unknown_env": `
app:
  env: qa
`,
	}

	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeTempConfig(t, yaml))
			assert.Error(t, err)
		})
	}
}

func TestConfigLoad_MalformedYAML(t *testing.T) {
	_, err := config.Load(writeTempConfig(t, "server: [port"))
	assert.Error(t, err)
}

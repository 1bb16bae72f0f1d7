package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contractsYAML = `
contracts:
  autograph_data: "0xe24e2baA8e53B06820952d82538b495C2A3fA247"
  print_splits: "0x8402e22e4712acc9Bb91Fbec752881c4F9f21b1D"
`

func TestLoadEmitterConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EmitterConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
ethereum:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
  start_block: 1000
` + contractsYAML,
			expectError: false,
			validate: func(t *testing.T, cfg *EmitterConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "ws://localhost:8545", cfg.Ethereum.WebSocketURL)
				assert.Equal(t, uint64(1000), cfg.Ethereum.StartBlock)
				assert.Equal(t, "0xe24e2baA8e53B06820952d82538b495C2A3fA247", cfg.Contracts.AutographData)
				assert.Equal(t, "0x8402e22e4712acc9Bb91Fbec752881c4F9f21b1D", cfg.Contracts.PrintSplits)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
ethereum:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
` + contractsYAML,
			expectError: false,
			validate: func(t *testing.T, cfg *EmitterConfig) {
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "AUTOGRAPH_EVENTS", cfg.NATS.StreamName)
			},
		},
		{
			name: "missing contract addresses",
			configFile: `
database:
  host: localhost
nats:
  url: "nats://localhost:4222"
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadEmitterConfig(configFile, tmpDir)
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadIndexerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *IndexerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  consumer_name: "test-indexer"
  ack_wait: "45s"
  max_deliver: 5
ethereum:
  rpc_url: "http://localhost:8545"
metadata:
  poll_interval: "10s"
  batch_size: 25
  uri:
    ipfs_gateways:
      - "https://gateway.example.com"
  worker:
    pool_size: 4
    queue_size: 64
` + contractsYAML,
			expectError: false,
			validate: func(t *testing.T, cfg *IndexerConfig) {
				assert.Equal(t, "test-indexer", cfg.NATS.ConsumerName)
				assert.Equal(t, "45s", cfg.NATS.AckWait.String())
				assert.Equal(t, 5, cfg.NATS.MaxDeliver)
				assert.Equal(t, "10s", cfg.Metadata.PollInterval.String())
				assert.Equal(t, 25, cfg.Metadata.BatchSize)
				assert.Equal(t, []string{"https://gateway.example.com"}, cfg.Metadata.URI.IPFSGateways)
				assert.Equal(t, 4, cfg.Metadata.Worker.WorkerPoolSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
nats:
  url: "nats://localhost:4222"
ethereum:
  rpc_url: "http://localhost:8545"
` + contractsYAML,
			expectError: false,
			validate: func(t *testing.T, cfg *IndexerConfig) {
				assert.Equal(t, "indexer", cfg.NATS.ConsumerName)
				assert.Equal(t, "30s", cfg.NATS.AckWait.String())
				assert.Equal(t, 3, cfg.NATS.MaxDeliver)
				assert.Equal(t, "30s", cfg.Metadata.PollInterval.String())
				assert.Equal(t, 50, cfg.Metadata.BatchSize)
				assert.Equal(t, 10, cfg.Metadata.Worker.WorkerPoolSize)
			},
		},
		{
			name: "missing contract addresses",
			configFile: `
database:
  host: localhost
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadIndexerConfig(configFile, tmpDir)
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		User:     "indexer",
		Password: "secret",
		DBName:   "autograph",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.example.com port=5433 user=indexer password=secret dbname=autograph sslmode=require",
		cfg.DSN())
}

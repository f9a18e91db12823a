//go:build unit

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"storefront-partners/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleFile(t *testing.T) {
	t.Run("rates and threshold override env defaults", func(t *testing.T) {
		raw := []byte(`
commission:
  rates:
    AFFILIATE: 7.5
    agent: 12
payout:
  threshold: 150000
`)
		rules, err := config.ParseRuleFile(raw)
		require.NoError(t, err)

		cfg := config.NewTestConfig()
		rules.ApplyTo(&cfg)

		assert.Equal(t, int64(750), cfg.Commission.AffiliateRateBps)
		assert.Equal(t, int64(1200), cfg.Commission.AgentRateBps)
		assert.Equal(t, int64(150000), cfg.Payout.Threshold)
	})

	t.Run("missing sections keep defaults", func(t *testing.T) {
		rules, err := config.ParseRuleFile([]byte(`commission: {}`))
		require.NoError(t, err)

		cfg := config.NewTestConfig()
		rules.ApplyTo(&cfg)

		assert.Equal(t, int64(500), cfg.Commission.AffiliateRateBps)
		assert.Equal(t, int64(1000), cfg.Commission.AgentRateBps)
		assert.Equal(t, int64(200000), cfg.Payout.Threshold)
	})

	t.Run("rate above 100 percent is rejected", func(t *testing.T) {
		_, err := config.ParseRuleFile([]byte("commission:\n  rates:\n    AGENT: 120\n"))
		require.Error(t, err)
	})

	t.Run("negative threshold is rejected", func(t *testing.T) {
		_, err := config.ParseRuleFile([]byte("payout:\n  threshold: -1\n"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.ParseRuleFile([]byte("commission: [unclosed"))
		require.Error(t, err)
	})
}

func TestLoadRuleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("payout:\n  threshold: 300000\n"), 0o600))

	rules, err := config.LoadRuleFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(300000), rules.Payout.Threshold)

	_, err = config.LoadRuleFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

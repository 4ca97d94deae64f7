package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 1000, cfg.Timeline.ScanWindow)
	require.Equal(t, 5, cfg.Timeline.OwnEntries)
	require.Equal(t, 10, cfg.Timeline.FeedEntries)
	require.Equal(t, 10, cfg.Timeline.FeedComments)
	require.Equal(t, 10, cfg.Timeline.CommentsForMe)
	require.Equal(t, 10, cfg.Timeline.HomeFootprints)
	require.Equal(t, 50, cfg.Timeline.PageFootprints)
	require.Equal(t, 20, cfg.Timeline.DiaryEntries)
	require.False(t, cfg.Identity.Strict)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SNS_TIMELINE_SCAN_WINDOW", "200")
	t.Setenv("SNS_IDENTITY_CACHE_STRICT", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 200, cfg.Timeline.ScanWindow)
	require.True(t, cfg.Identity.Strict)
}

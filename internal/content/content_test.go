package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kbportal/internal/config"
	"kbportal/internal/observability"

	"github.com/stretchr/testify/require"
)

func TestMemorySource_UnknownIDReturnsSentinel(t *testing.T) {
	src := NewMemorySource(SeedContent(), 0)

	c, err := src.Fetch(context.Background(), "999")
	require.NoError(t, err)
	require.Equal(t, NotFoundContent, c.Content)

	c, err = src.Fetch(context.Background(), "1")
	require.NoError(t, err)
	require.Contains(t, c.Content, "2568")
}

func TestMemorySource_DelayHonorsContext(t *testing.T) {
	src := NewMemorySource(SeedContent(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Fetch(ctx, "1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCatalog_Filter(t *testing.T) {
	c := NewCatalog(SeedDocuments())

	require.Len(t, c.Filter("", "all"), 6)
	require.Len(t, c.Filter("", "credit"), 2)
	require.Len(t, c.Filter("it", ""), 2)
	require.Len(t, c.Filter("ฝ่ายทรัพยากรบุคคล", "hr"), 2)
	require.Empty(t, c.Filter("ฝ่ายทรัพยากรบุคคล", "it"))

	d, ok := c.Get("4")
	require.True(t, ok)
	require.Equal(t, "2.0", d.Version)

	_, ok = c.Get("nope")
	require.False(t, ok)
}

func TestDirSource_LoadsAndReloads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("first"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("x"), 0o644))

	src, err := NewDirSource(dir, observability.NewNopLogger())
	require.NoError(t, err)
	defer src.Close()

	ctx := context.Background()

	c, err := src.Fetch(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "first", c.Content)

	c, err = src.Fetch(ctx, "skip")
	require.NoError(t, err)
	require.Equal(t, NotFoundContent, c.Content)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("second"), 0o644))

	require.Eventually(t, func() bool {
		c, err := src.Fetch(ctx, "b")
		return err == nil && c.Content == "second"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewSource(t *testing.T) {
	cfg := config.Default()
	cfg.ContentDelay = 0

	src, err := NewSource(cfg, observability.NewNopLogger())
	require.NoError(t, err)
	require.IsType(t, &MemorySource{}, src)

	cfg.ContentSource = "ftp"
	_, err = NewSource(cfg, observability.NewNopLogger())
	require.Error(t, err)
}

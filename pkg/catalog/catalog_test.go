package catalog

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exoplaneteu/exoplaneteu/pkg/errors"
	"github.com/exoplaneteu/exoplaneteu/pkg/fetch"
	"github.com/exoplaneteu/exoplaneteu/pkg/observability"
	"github.com/exoplaneteu/exoplaneteu/pkg/store"
)

// fakeDownloader writes body to the target and counts calls.
type fakeDownloader struct {
	body  string
	err   error
	calls int
}

func (f *fakeDownloader) DownloadSize(_ context.Context, target string) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	n, err := store.WriteFile(target, strings.NewReader(f.body))
	return n, err
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return st
}

func seed(t *testing.T, st *store.Store, body string, age time.Duration) {
	t.Helper()
	_, err := st.WriteFile(strings.NewReader(body))
	require.NoError(t, err)
	mt := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(st.ArtifactPath(), mt, mt))
}

func TestGetData_Missing(t *testing.T) {
	st := newStore(t)
	dl := &fakeDownloader{body: sampleCSV}
	var buf bytes.Buffer

	c := New(st, dl, WithLogger(log.New(&buf)))
	tbl, err := c.GetData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, dl.calls)
	assert.Equal(t, []string{"name", "mass", "star_name"}, tbl.Columns())
	assert.Equal(t, 2, tbl.RowCount())
	assert.Contains(t, buf.String(), "Downloading exoplanet.eu data")
	assert.Contains(t, buf.String(), "There are 3 columns with 2 entries each")
	assert.FileExists(t, st.ArtifactPath())
}

func TestGetData_FreshSkipsDownload(t *testing.T) {
	st := newStore(t)
	seed(t, st, sampleCSV, 24*time.Hour)
	dl := &fakeDownloader{err: errors.New(errors.ErrCodeNetwork, "offline")}
	var buf bytes.Buffer

	c := New(st, dl, WithLogger(log.New(&buf)))
	tbl, err := c.GetData(context.Background())
	require.NoError(t, err)

	assert.Zero(t, dl.calls)
	assert.Equal(t, 2, tbl.RowCount())
	assert.Contains(t, buf.String(), "Data in `exoplanetEU.csv` is recent.")
}

func TestGetData_StaleDownloadsOnce(t *testing.T) {
	st := newStore(t)
	seed(t, st, "# name\nOld-1b\n", 6*24*time.Hour)
	dl := &fakeDownloader{body: sampleCSV}
	var buf bytes.Buffer

	c := New(st, dl, WithLogger(log.New(&buf)))
	tbl, err := c.GetData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, dl.calls)
	assert.Equal(t, 2, tbl.RowCount())
	assert.Contains(t, buf.String(), "Data in `exoplanetEU.csv` is older than 5 days, downloading.")

	age, err := c.Age()
	require.NoError(t, err)
	assert.Less(t, age, 1.0)
}

func TestGetData_StaleDownloadFailureKeepsArtifact(t *testing.T) {
	st := newStore(t)
	old := "# name\nOld-1b\n"
	seed(t, st, old, 6*24*time.Hour)
	dl := &fakeDownloader{err: errors.New(errors.ErrCodeNetwork, "offline")}

	c := New(st, dl)
	tbl, err := c.GetData(context.Background())
	require.Error(t, err)
	assert.Nil(t, tbl)
	assert.True(t, errors.Is(err, errors.ErrCodeNetwork))

	got, err := os.ReadFile(st.ArtifactPath())
	require.NoError(t, err)
	assert.Equal(t, old, string(got))
}

func TestGetData_MalformedArtifact(t *testing.T) {
	st := newStore(t)
	seed(t, st, "# name,mass\nK,1,2\n", 0)

	c := New(st, &fakeDownloader{})
	_, err := c.GetData(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestGetData_WithPolicyAndClock(t *testing.T) {
	st := newStore(t)
	seed(t, st, sampleCSV, 0)
	dl := &fakeDownloader{body: sampleCSV}

	future := func() time.Time { return time.Now().Add(3 * 24 * time.Hour) }
	c := New(st, dl, WithPolicy(Policy{MaxAgeDays: 2}), WithClock(future))

	s, err := c.Status()
	require.NoError(t, err)
	assert.True(t, s.Exists)
	assert.Equal(t, Stale, s.Decision)
	assert.InDelta(t, 3, s.AgeDays, 0.01)

	_, err = c.GetData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dl.calls)
}

func TestRefresh_AlwaysDownloads(t *testing.T) {
	st := newStore(t)
	seed(t, st, sampleCSV, 0)
	dl := &fakeDownloader{body: sampleCSV}

	c := New(st, dl)
	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, 1, dl.calls)
}

func TestRead_DoesNotFetch(t *testing.T) {
	st := newStore(t)
	dl := &fakeDownloader{body: sampleCSV}
	c := New(st, dl)

	_, err := c.Read(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeArtifactNotFound))
	assert.Zero(t, dl.calls)
}

func TestRead_Cancelled(t *testing.T) {
	st := newStore(t)
	seed(t, st, sampleCSV, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(st, &fakeDownloader{}).Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAge_Missing(t *testing.T) {
	c := New(newStore(t), &fakeDownloader{})
	_, err := c.Age()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeArtifactNotFound))
}

func TestWithFloatColumns(t *testing.T) {
	st := newStore(t)
	seed(t, st, sampleCSV, 0)

	c := New(st, &fakeDownloader{}, WithFloatColumns(nil))
	tbl, err := c.GetData(context.Background())
	require.NoError(t, err)

	mass, err := tbl.GetColumn("mass")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.2", ""}, mass.Strings())
}

type recordingCacheHooks struct {
	hits, sets int
	misses     []string
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, time.Duration) { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(_ context.Context, reason string) {
	r.misses = append(r.misses, reason)
}
func (r *recordingCacheHooks) OnCacheSet(context.Context, int64) { r.sets++ }

func TestGetData_CacheHooks(t *testing.T) {
	rec := &recordingCacheHooks{}
	observability.SetCacheHooks(rec)
	t.Cleanup(observability.Reset)

	st := newStore(t)
	c := New(st, &fakeDownloader{body: sampleCSV})

	_, err := c.GetData(context.Background())
	require.NoError(t, err)
	_, err = c.GetData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"missing"}, rec.misses)
	assert.Equal(t, 1, rec.sets)
	assert.Equal(t, 1, rec.hits)
}

func TestGetData_OverHTTP(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	st := newStore(t)
	c := New(st, fetch.New(fetch.WithURL(srv.URL)))

	tbl, err := c.GetData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	mass, err := tbl.GetColumn("mass")
	require.NoError(t, err)
	assert.Equal(t, 1.2, mass.Floats()[0])
	assert.True(t, math.IsNaN(mass.Floats()[1]))

	clean, err := tbl.Get("mass_nonan")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.2}, clean.Floats())

	// Second call within the threshold reuses the artifact.
	_, err = c.GetData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestGetData_HTTPNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	st := newStore(t)
	c := New(st, fetch.New(fetch.WithURL(srv.URL)))

	_, err := c.GetData(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fetch.ErrNotFound)
	assert.NoFileExists(t, st.ArtifactPath())
}

func TestRead_Idempotent(t *testing.T) {
	st := newStore(t)
	seed(t, st, sampleCSV, 0)
	c := New(st, &fakeDownloader{})

	first, err := c.Read(context.Background())
	require.NoError(t, err)
	second, err := c.Read(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Columns(), second.Columns())
	for i := range first.RowCount() {
		a, err := first.GetRow(i)
		require.NoError(t, err)
		b, err := second.GetRow(i)
		require.NoError(t, err)
		assert.Equal(t, a.Names(), b.Names())
		for j := range a.Values() {
			assert.Equal(t, a.Values()[j].String(), b.Values()[j].String())
		}
	}
}

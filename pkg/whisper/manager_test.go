// SPDX-License-Identifier: Apache-2.0

package whisper

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// withTestRegistry swaps the embedded registry for one pointing at a local
// HTTP server so downloads stay hermetic.
func withTestRegistry(t *testing.T, baseURL string, models []Model) {
	t.Helper()

	raw, err := json.Marshal(registry{BaseURL: baseURL, Models: models})
	require.NoError(t, err)

	orig := modelsJSON
	modelsJSON = raw
	t.Cleanup(func() { modelsJSON = orig })
}

func TestManager_Download(t *testing.T) {
	content := []byte("tiny model weights")
	sum := fmt.Sprintf("%x", sha256.Sum256(content))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/"+sum+"/tiny.pt", r.URL.Path)
		_, _ = w.Write(content)
	}))
	defer srv.Close()

	withTestRegistry(t, srv.URL, []Model{{Name: "tiny", SHA256: sum}})

	dir := t.TempDir()
	m := NewManager(dir)

	require.NoError(t, m.Download(context.Background(), "tiny"))

	data, err := os.ReadFile(filepath.Join(dir, "tiny.pt"))
	require.NoError(t, err)
	require.Equal(t, content, data)

	model, err := LookupModel("tiny")
	require.NoError(t, err)
	require.True(t, m.IsDownloaded(model))
}

func TestManager_DownloadChecksumMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("corrupted payload"))
	}))
	defer srv.Close()

	withTestRegistry(t, srv.URL, []Model{{Name: "tiny", SHA256: "0000000000000000000000000000000000000000000000000000000000000000"}})

	dir := t.TempDir()
	m := NewManager(dir)

	require.Error(t, m.Download(context.Background(), "tiny"))

	// no partial artifact left behind
	_, err := os.Stat(filepath.Join(dir, "tiny.pt"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "tiny.pt.partial"))
	require.True(t, os.IsNotExist(err))
}

func TestManager_DownloadSkipsVerifiedCopy(t *testing.T) {
	content := []byte("already here")
	sum := fmt.Sprintf("%x", sha256.Sum256(content))

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write(content)
	}))
	defer srv.Close()

	withTestRegistry(t, srv.URL, []Model{{Name: "tiny", SHA256: sum}})

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.pt"), content, 0o644))

	m := NewManager(dir)
	require.NoError(t, m.Download(context.Background(), "tiny"))
	require.Zero(t, requests)
}

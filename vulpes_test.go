package vulpes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initLibrary brings the library up and tears it down with the test.
func initLibrary(t *testing.T) {
	t.Helper()
	require.Equal(t, CodeOK, Init())
	t.Cleanup(Shutdown)
}

func TestLifecycle(t *testing.T) {
	assert.False(t, IsInitialized())

	assert.Equal(t, CodeOK, Init())
	assert.True(t, IsInitialized())

	// Repeat init is a no-op.
	assert.Equal(t, CodeOK, Init())
	assert.True(t, IsInitialized())

	Shutdown()
	assert.False(t, IsInitialized())

	// Shutdown when already down is harmless.
	Shutdown()
	assert.False(t, IsInitialized())
}

func TestOperationsRequireInit(t *testing.T) {
	res := ExtractText([]byte("<p>x</p>"))
	assert.Equal(t, CodeNotInitialized, res.Code)
	res.Release()

	fr := Fetch(context.Background(), "https://example.com")
	assert.Equal(t, CodeNotInitialized, fr.Code)
	fr.Release()
}

func TestExtractText(t *testing.T) {
	initLibrary(t)

	input := `<html><head><title>X</title></head><body><p>Hello&nbsp;World</p><script>evil()</script></body></html>`
	res := ExtractText([]byte(input))
	defer res.Release()

	assert.Equal(t, CodeOK, res.Code)
	assert.Equal(t, "Hello World", string(res.Text))
}

func TestExtractTextEmptyInput(t *testing.T) {
	initLibrary(t)

	res := ExtractText(nil)
	defer res.Release()
	assert.Equal(t, CodeOK, res.Code)
	assert.NotNil(t, res.Text)
	assert.Empty(t, res.Text)
}

func TestExtractTextOversizedInput(t *testing.T) {
	initLibrary(t)

	big := bytes.Repeat([]byte("a"), int(10<<20)+1)
	res := ExtractText(big)
	defer res.Release()
	assert.Equal(t, CodeInvalidArgument, res.Code)
	assert.Empty(t, res.Text)
}

func TestExtractTitle(t *testing.T) {
	initLibrary(t)

	res := ExtractTitle([]byte(`<head><title>  My  Page </title></head><body>ignored</body>`))
	defer res.Release()
	assert.Equal(t, CodeOK, res.Code)
	assert.Equal(t, "My Page", string(res.Text))
}

func TestCleanHTML(t *testing.T) {
	initLibrary(t)

	res := CleanHTML([]byte(`<p>fine</p><script>alert(1)</script>`))
	defer res.Release()
	assert.Equal(t, CodeOK, res.Code)
	assert.Contains(t, string(res.Text), "fine")
	assert.NotContains(t, string(res.Text), "script")
}

func TestReleaseIsSingleShot(t *testing.T) {
	initLibrary(t)

	res := ExtractText([]byte("<p>x</p>"))
	res.Release()
	assert.Nil(t, res.Text)

	// Repeat release is detected and ignored.
	res.Release()

	var nilResult *TextResult
	nilResult.Release()
}

func TestFetch(t *testing.T) {
	initLibrary(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><p>remote</p></body></html>"))
	}))
	defer srv.Close()

	res := Fetch(context.Background(), srv.URL)
	defer res.Release()

	assert.Equal(t, CodeOK, res.Code)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Contains(t, string(res.Body), "remote")
	assert.Contains(t, res.ContentType, "text/html")
}

func TestFetchInvalidURL(t *testing.T) {
	initLibrary(t)

	for _, bad := range []string{"", "   ", "not a url", "ftp://example.com/x"} {
		res := Fetch(context.Background(), bad)
		assert.Equal(t, CodeInvalidArgument, res.Code, bad)
		res.Release()
	}
}

func TestFetchUnreachable(t *testing.T) {
	initLibrary(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead := srv.URL
	srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res := Fetch(ctx, dead)
	defer res.Release()
	assert.Equal(t, CodeNetwork, res.Code)
	assert.Zero(t, res.Status)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "0.1.0", Version())
}

func TestCodeStrings(t *testing.T) {
	assert.Equal(t, "ok", CodeOK.String())
	assert.Equal(t, "not_initialized", CodeNotInitialized.String())
	assert.True(t, CodeOK.OK())
	assert.False(t, CodeNetwork.OK())
}

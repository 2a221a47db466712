package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/pathdash/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		latest    string
		available bool
	}{
		{"newer release", "v1.0.0", "v1.2.0", true},
		{"same version", "v1.2.0", "v1.2.0", false},
		{"ahead of release", "v2.0.0", "v1.2.0", false},
		{"missing v prefix", "1.0.0", "v1.0.1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker(WithBaseURL(releaseServer(t, tt.latest).URL))
			res, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.available, res.UpdateAvailable)
			assert.Equal(t, tt.latest, res.LatestVersion)
			assert.Equal(t, "https://example.com/"+tt.latest, res.ReleaseURL)
		})
	}
}

func TestCheck_DevBuild(t *testing.T) {
	for _, v := range []string{"", "(devel)", "dev", "not-a-version"} {
		_, err := NewChecker().Check(context.Background(), &CheckInput{Version: v})
		assert.ErrorIs(t, err, ErrDevBuild, v)
	}
}

func TestCheck_BadTag(t *testing.T) {
	checker := NewChecker(WithBaseURL(releaseServer(t, "nightly").URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a semantic version")
}

func TestCheck_HTTPError(t *testing.T) {
	checker := NewChecker(
		WithBaseURL(releaseServer(t, "v1.0.0").URL),
		WithRepository("someone", "else"),
	)
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

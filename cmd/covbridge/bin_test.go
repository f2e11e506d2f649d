package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/testutils"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := RootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspectJacoco(t *testing.T) {
	file, err := testutils.AbsPath(testutils.JacocoPath)
	require.NoError(t, err)

	out, err := execute(t, "inspect", "--file", file, "--provider", core.ProviderJacoco)
	require.NoError(t, err)

	var s core.CoverageSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "jacoco.json", s.Job)
	assert.Len(t, s.Elements, 6)
}

func TestInspectCoberturaFiltered(t *testing.T) {
	file, err := testutils.AbsPath(testutils.CoberturaDepth3Path)
	require.NoError(t, err)

	out, err := execute(t, "inspect", "-f", file, "--filter", "com.example.pkg2?", "-o", "yaml")
	require.NoError(t, err)

	var summaries []core.CoverageSummary
	require.NoError(t, yaml.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 7)
	assert.Equal(t, "com.example.pkg20", summaries[0].Path)
}

func TestInspectErrors(t *testing.T) {
	file, err := testutils.AbsPath(testutils.JacocoPath)
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
	}{
		{"Missing file flag", []string{"inspect"}},
		{"Absent file", []string{"inspect", "--file", file + ".missing"}},
		{"Cobertura read of a jacoco document", []string{"inspect", "--file", file}},
		{"Filter on a flat report", []string{"inspect", "--file", file, "--provider", "jacoco", "--filter", "**"}},
		{"Unsupported output", []string{"inspect", "--file", file, "--provider", "jacoco", "-o", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestFetch(t *testing.T) {
	body, err := testutils.LoadFile(testutils.JacocoPath)
	require.NoError(t, err)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, token, ok := r.BasicAuth(); !ok || user != "admin" || token != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if r.URL.Path != "/job/core/9/jacoco/api/json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(body)
	}))
	defer server.Close()
	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	jenkinsArgs := []string{"--host", u.Hostname(), "--jenkins-port", u.Port(), "--user", "admin", "--token", "secret"}

	out, err := execute(t, append([]string{"fetch", "--job", "core", "--build", "9", "--provider", "jacoco"}, jenkinsArgs...)...)
	require.NoError(t, err)
	var s core.CoverageSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "9", s.Build)
	assert.Len(t, s.Elements, 6)

	_, err = execute(t, append([]string{"fetch", "--job", "other", "--provider", "jacoco"}, jenkinsArgs...)...)
	assert.Error(t, err)

	_, err = execute(t, "fetch", "--provider", "jacoco")
	assert.Error(t, err, "job is required")
}

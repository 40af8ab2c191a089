package pomtoml_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-pomtoml"
	"github.com/KimNorgaard/go-pomtoml/model"
)

type recordingReader struct {
	called bool
	opts   int
}

func (r *recordingReader) Read(_ io.Reader, opts ...pomtoml.Option) (*model.Model, error) {
	r.called = true
	r.opts = len(opts)
	return &model.Model{ArtifactID: "from-fallback"}, nil
}

func TestProcessor_Dispatch(t *testing.T) {
	const doc = "[project]\nartifact = \"from-toml\"\n"

	testCases := []struct {
		source   string
		fallback bool
	}{
		{source: "pom.toml"},
		{source: "dir/POM.TOML"},
		{source: "pom.xml", fallback: true},
		{source: "pom.toml.bak", fallback: true},
		{source: "", fallback: true},
	}

	for _, tc := range testCases {
		t.Run(tc.source, func(t *testing.T) {
			rec := &recordingReader{}
			p := pomtoml.NewProcessor(rec)

			m, err := p.Read(strings.NewReader(doc), pomtoml.Source(tc.source), pomtoml.Strict(true))
			require.NoError(t, err)
			require.Equal(t, tc.fallback, rec.called)
			if tc.fallback {
				require.Equal(t, "from-fallback", m.ArtifactID)
				require.Equal(t, 2, rec.opts)
			} else {
				require.Equal(t, "from-toml", m.ArtifactID)
			}
		})
	}
}

func TestProcessor_OptionsFromMap(t *testing.T) {
	opts, err := pomtoml.OptionsFromMap(map[string]any{
		pomtoml.StrictKey: "TRUE",
		pomtoml.SourceKey: "pom.toml",
		"unrelated":       42,
	})
	require.NoError(t, err)

	p := pomtoml.NewProcessor(nil)
	_, err = p.Read(strings.NewReader("[project]\nfoo = 1\n"), opts...)
	require.ErrorIs(t, err, pomtoml.ErrUnrecognizedKey)

	opts, err = pomtoml.OptionsFromMap(map[string]any{
		pomtoml.StrictKey: false,
		pomtoml.SourceKey: "pom.toml",
	})
	require.NoError(t, err)
	m, err := p.Read(strings.NewReader("[project]\nfoo = 1\n"), opts...)
	require.NoError(t, err)
	require.NotNil(t, m)

	_, err = pomtoml.OptionsFromMap(map[string]any{pomtoml.StrictKey: 1})
	require.EqualError(t, err, "pomtoml: option org.apache.maven.model.io.isStrict: unsupported value of type int")

	opts, err = pomtoml.OptionsFromMap(map[string]any{pomtoml.StrictKey: nil, pomtoml.SourceKey: nil})
	require.NoError(t, err)
	require.Empty(t, opts)
}

func TestProcessor_ReadFile(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "pom.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[project]\nartifact = \"demo\"\n"), 0o644))

	p := pomtoml.NewProcessor(nil)
	m, err := p.ReadFile(tomlPath)
	require.NoError(t, err)
	require.Equal(t, "demo", m.ArtifactID)
	require.Equal(t, tomlPath, m.PomFile)

	xmlPath := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte(`<project><artifactId>legacy</artifactId></project>`), 0o644))
	m, err = p.ReadFile(xmlPath)
	require.NoError(t, err)
	require.Equal(t, "legacy", m.ArtifactID)
	require.Equal(t, xmlPath, m.PomFile)

	_, err = p.ReadFile(filepath.Join(dir, "missing.toml"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestProcessor_Locate(t *testing.T) {
	dir := t.TempDir()
	p := pomtoml.NewProcessor(nil)

	require.Equal(t, filepath.Join(dir, "pom.xml"), p.Locate(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pom.toml"), nil, 0o644))
	require.Equal(t, filepath.Join(dir, "pom.toml"), p.Locate(dir))
}

func TestProcessor_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := pomtoml.NewProcessor(nil)
	_, err := p.Read(strings.NewReader("[project]\ncolour = \"red\"\n"),
		pomtoml.Source("pom.toml"), pomtoml.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "reading TOML descriptor")
	require.Contains(t, out, "skipping unrecognized key")
	require.Contains(t, out, "path=project.colour")
	require.Contains(t, out, "source=pom.toml")
}

// TestProcessor_Concurrent runs strict and lenient reads of the same
// document side by side; neither may observe the other's policy.
func TestProcessor_Concurrent(t *testing.T) {
	const doc = "[project]\nartifact = \"demo\"\nunknown = true\n"
	p := pomtoml.NewProcessor(nil)

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := range 100 {
		strict := i%2 == 0
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := p.Read(strings.NewReader(doc), pomtoml.Source("pom.toml"), pomtoml.Strict(strict))
			switch {
			case strict && !errors.Is(err, pomtoml.ErrUnrecognizedKey):
				errs <- errors.New("strict read did not fail")
			case !strict && (err != nil || m.ArtifactID != "demo"):
				errs <- errors.New("lenient read failed")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

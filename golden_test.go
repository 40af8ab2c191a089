package pomtoml

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-pomtoml/model"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden decodes every testdata/*.toml in strict mode. The matching
// .golden file holds either the expected model as YAML or, for inputs
// that must fail, the error message.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.toml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			m, decodeErr := Unmarshal(src, Strict(true), Source(file))
			goldenFile := strings.TrimSuffix(file, ".toml") + ".golden"

			if *update {
				var actual []byte
				if decodeErr != nil {
					actual = []byte(decodeErr.Error() + "\n")
				} else {
					actual, err = Marshal(m, Indent(2))
					require.NoError(t, err)
				}
				require.NoError(t, os.WriteFile(goldenFile, actual, 0o644))
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			if decodeErr != nil {
				require.Equal(t, strings.TrimSpace(string(expected)), decodeErr.Error())
				return
			}

			var want model.Model
			require.NoError(t, yaml.Unmarshal(expected, &want))
			if diff := cmp.Diff(&want, m, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("model mismatch (-golden +decoded):\n%s", diff)
			}
		})
	}
}

// TestGolden_EncodeRoundTrip checks that the YAML view of every valid
// fixture decodes back to the same model.
func TestGolden_EncodeRoundTrip(t *testing.T) {
	files, err := filepath.Glob("testdata/*.toml")
	require.NoError(t, err)

	for _, file := range files {
		src, err := os.ReadFile(file)
		require.NoError(t, err)
		m, err := Unmarshal(src)
		if err != nil {
			continue
		}
		t.Run(file, func(t *testing.T) {
			out, err := Marshal(m)
			require.NoError(t, err)

			var back model.Model
			require.NoError(t, yaml.Unmarshal(out, &back))
			if diff := cmp.Diff(m, &back, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-decoded +yaml):\n%s", diff)
			}
		})
	}
}

//go:build go1.18

package pomtoml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-pomtoml"
)

func FuzzUnmarshal(f *testing.F) {
	// Seed the corpus with the descriptors from the testdata directory.
	seedFiles, err := filepath.Glob("testdata/*.toml")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte(""))
	f.Add([]byte("[dependencies]\n\"a:b:c:d\" = 1\n"))
	f.Add([]byte("[[build.plugins]]\nconfiguration = { x = [{ y = [{}] }] }\n"))
	f.Add([]byte("[properties]\na.b.c = [1]\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Invalid input must fail cleanly; the fuzz engine reports panics.
		m, err := pomtoml.Unmarshal(data, pomtoml.MaxDepth(64))
		if err != nil {
			require.Nil(t, m)
			return
		}

		// Encoding may reject keys that are not valid element names, but
		// it must not panic.
		_, _ = pomtoml.Marshal(m)
		_, _ = pomtoml.Marshal(m, pomtoml.EncodeFormat(pomtoml.FormatXML))
	})
}

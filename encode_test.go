package pomtoml_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-pomtoml"
	"github.com/KimNorgaard/go-pomtoml/internal/testutil"
	"github.com/KimNorgaard/go-pomtoml/model"
)

func TestMarshal(t *testing.T) {
	m := &model.Model{GroupID: "g", ArtifactID: "a"}

	t.Run("YAML by default", func(t *testing.T) {
		out, err := pomtoml.Marshal(m)
		require.NoError(t, err)
		require.Equal(t, "groupId: g\nartifactId: a\n", string(out))
	})

	t.Run("XML indented", func(t *testing.T) {
		out, err := pomtoml.Marshal(m, pomtoml.EncodeFormat(pomtoml.FormatXML))
		require.NoError(t, err)
		expected := `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <groupId>g</groupId>
  <artifactId>a</artifactId>
</project>
`
		require.Equal(t, expected, string(out))
	})

	t.Run("XML compact", func(t *testing.T) {
		out, err := pomtoml.Marshal(m, pomtoml.EncodeFormat(pomtoml.FormatXML), pomtoml.Indent(0))
		require.NoError(t, err)
		require.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
			`<project><groupId>g</groupId><artifactId>a</artifactId></project>`+"\n", string(out))
	})

	t.Run("Configuration elements", func(t *testing.T) {
		m := &model.Model{Build: &model.Build{Plugins: []model.Plugin{{
			ArtifactID: "tool",
			Configuration: &model.Dom{Name: "configuration", Children: []*model.Dom{
				{Name: "release", Value: "21"},
			}},
		}}}}
		out, err := pomtoml.Marshal(m, pomtoml.EncodeFormat(pomtoml.FormatXML), pomtoml.Indent(0))
		require.NoError(t, err)
		require.Contains(t, string(out),
			"<plugin><artifactId>tool</artifactId><configuration><release>21</release></configuration></plugin>")
	})

	t.Run("Nil model", func(t *testing.T) {
		_, err := pomtoml.Marshal(nil)
		require.EqualError(t, err, "pomtoml: Encode(nil model)")
	})

	t.Run("Invalid options", func(t *testing.T) {
		_, err := pomtoml.Marshal(m, pomtoml.Indent(-1))
		require.EqualError(t, err, "pomtoml: indent must not be negative")

		_, err = pomtoml.Marshal(m, pomtoml.EncodeFormat(pomtoml.Format(7)))
		require.EqualError(t, err, "pomtoml: unknown format 7")
	})
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "YML"} {
		f, err := pomtoml.ParseFormat(s)
		require.NoError(t, err)
		require.Equal(t, pomtoml.FormatYAML, f)
	}
	f, err := pomtoml.ParseFormat("Xml")
	require.NoError(t, err)
	require.Equal(t, pomtoml.FormatXML, f)
	require.Equal(t, "xml", f.String())

	_, err = pomtoml.ParseFormat("json")
	require.EqualError(t, err, `pomtoml: unknown format "json"`)
	require.Equal(t, "Format(9)", pomtoml.Format(9).String())
}

func BenchmarkUnmarshal(b *testing.B) {
	data := testutil.Descriptor(b, "full.toml")
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for b.Loop() {
		if _, err := pomtoml.Unmarshal(data); err != nil {
			b.Fatalf("Unmarshal failed during benchmark: %v", err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	m, err := pomtoml.Unmarshal(testutil.Descriptor(b, "full.toml"))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()

	var buf bytes.Buffer
	enc := pomtoml.NewEncoder(&buf, pomtoml.EncodeFormat(pomtoml.FormatXML))
	for b.Loop() {
		if err := enc.Encode(m); err != nil {
			b.Fatalf("Encode failed during benchmark: %v", err)
		}
		buf.Reset()
	}
}

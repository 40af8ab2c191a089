/*
Package pomtoml reads Maven project descriptors written in TOML and turns
them into Maven project models. A pom.toml covers what a pom.xml does with
less ceremony: short key aliases, "group:artifact:version" shorthands and
tables keyed by coordinates.

The package offers two primary workflows depending on the use case:

1. Model-Oriented Decoding and Encoding

For the common task of turning a descriptor into a model, Unmarshal and
NewDecoder provide a direct API modeled on the standard `encoding/json`
package.

	var data = []byte(`
	[project]
	group = "org.example"
	artifact = "demo"
	version = "1.0"

	[dependencies]
	"org.junit.jupiter:junit-jupiter:5.10.0" = { scope = "test" }
	`)

	m, err := pomtoml.Unmarshal(data, pomtoml.Strict(true))
	if err != nil {
		// handle error
	}
	// m.Coordinates() is now "org.example:demo:1.0"

In strict mode an unrecognized key aborts decoding with a *KeyError. In the
default lenient mode the key is skipped, logged and passed to the OnWarning
callback. Deprecated spellings are always accepted and reported as
*Deprecation values.

Marshal and NewEncoder render a model as YAML or as pom.xml:

	out, err := pomtoml.Marshal(m, pomtoml.EncodeFormat(pomtoml.FormatXML))

2. Descriptor Processing

A Processor picks a reader by source name. Names ending in ".toml" are
transcoded and everything else goes to a fallback reader, XMLReader by
default. Locate chooses between pom.toml and pom.xml for a project
directory.

	p := pomtoml.NewProcessor(nil)
	m, err := p.ReadFile(p.Locate("."))

Parse exposes the raw document tree for tools that need the keys before
they are interpreted, and Transcode decodes such a tree.
*/
package pomtoml

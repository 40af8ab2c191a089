package pomtoml

import (
	"github.com/KimNorgaard/go-pomtoml/internal/mapper"
	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

var buildFields = mapper.New("build",
	mapper.Alias(deprecatedText("[directory] source", func(b *model.Build, v string) { b.SourceDirectory = v }), "sourceDirectory"),
	mapper.Alias(deprecatedText("[directory] script-source", func(b *model.Build, v string) { b.ScriptSourceDirectory = v }), "scriptSourceDirectory"),
	mapper.Alias(deprecatedText("[directory] test-source", func(b *model.Build, v string) { b.TestSourceDirectory = v }), "testSourceDirectory"),
	mapper.Alias(deprecatedText("[directory] output", func(b *model.Build, v string) { b.OutputDirectory = v }), "outputDirectory"),
	mapper.Alias(deprecatedText("[directory] test-output", func(b *model.Build, v string) { b.TestOutputDirectory = v }), "testOutputDirectory"),
	mapper.Alias(many(record(extensionFields, extensionIdent), func(b *model.Build, e ...model.Extension) {
		b.Extensions = append(b.Extensions, e...)
	}), "extension", "extensions"),
	mapper.Alias(text(func(b *model.Build, v string) { b.DefaultGoal = v }), "defaultGoal"),
	mapper.Alias(deprecated("[[directory.resource]]", many(record(resourceFields, nil), addResources)), "resource", "resources"),
	mapper.Alias(deprecated("[[directory.test-resource]]", many(record(resourceFields, nil), addTestResources)), "testResource", "testResources"),
	mapper.Alias(text(func(b *model.Build, v string) { b.Directory = v }), "directory"),
	mapper.Alias(text(func(b *model.Build, v string) { b.FinalName = v }), "finalName"),
	mapper.Alias(texts(func(b *model.Build, v ...string) { b.Filters = append(b.Filters, v...) }), "filter", "filters"),
	mapper.Alias(list(decodePlugins, func(b *model.Build, p ...model.Plugin) {
		b.Plugins = append(b.Plugins, p...)
	}), "plugin", "plugins"),
	mapper.Alias(deprecated("[management.plugin]", field[*model.Build](func(ds *decodeState, at scope, key string, n tree.Node, b *model.Build) error {
		return decodeTable(ds, at.child(key), n, pluginManagementOf(b), pluginManagementFields, nil)
	})), "pluginManagement"),
)

// directoryFields is the preferred spelling of the build directories.
var directoryFields = mapper.New("directory",
	mapper.Alias(text(func(b *model.Build, v string) { b.SourceDirectory = v }), "source"),
	mapper.Alias(text(func(b *model.Build, v string) { b.ScriptSourceDirectory = v }), "scriptSource"),
	mapper.Alias(text(func(b *model.Build, v string) { b.TestSourceDirectory = v }), "testSource"),
	mapper.Alias(text(func(b *model.Build, v string) { b.OutputDirectory = v }), "output"),
	mapper.Alias(text(func(b *model.Build, v string) { b.TestOutputDirectory = v }), "testOutput"),
	mapper.Alias(many(record(resourceFields, nil), addResources), "resource", "resources"),
	mapper.Alias(many(record(resourceFields, nil), addTestResources), "testResource", "testResources"),
)

var resourceFields = mapper.New("resource",
	mapper.Alias(text(func(r *model.Resource, v string) { r.TargetPath = v }), "targetPath"),
	mapper.Alias(boolean(func(r *model.Resource, v *bool) { r.Filtering = v }), "filtering"),
	mapper.Alias(texts(func(r *model.Resource, v ...string) { r.Includes = append(r.Includes, v...) }), "include", "includes"),
	mapper.Alias(texts(func(r *model.Resource, v ...string) { r.Excludes = append(r.Excludes, v...) }), "exclude", "excludes"),
	mapper.Alias(text(func(r *model.Resource, v string) { r.Directory = v }), "directory"),
)

var extensionFields = mapper.New("extension",
	mapper.Alias(text(func(e *model.Extension, v string) { e.GroupID = v }), "group", "groupId"),
	mapper.Alias(text(func(e *model.Extension, v string) { e.ArtifactID = v }), "artifact", "artifactId"),
	mapper.Alias(text(func(e *model.Extension, v string) { e.Version = v }), "version"),
)

var pluginManagementFields = mapper.New("pluginManagement",
	mapper.Alias(list(decodePlugins, func(m *model.PluginManagement, p ...model.Plugin) {
		m.Plugins = append(m.Plugins, p...)
	}), "plugin", "plugins"),
)

var pluginFields = mapper.New("plugin",
	mapper.Alias(text(func(p *model.Plugin, v string) { p.GroupID = v }), "group", "groupId"),
	mapper.Alias(text(func(p *model.Plugin, v string) { p.ArtifactID = v }), "artifact", "artifactId"),
	mapper.Alias(text(func(p *model.Plugin, v string) { p.Version = v }), "version"),
	mapper.Alias(boolean(func(p *model.Plugin, v *bool) { p.Extensions = v }), "extensions"),
	mapper.Alias(many(record(executionFields, func(e *model.PluginExecution) string { return e.ID }), func(p *model.Plugin, e ...model.PluginExecution) {
		p.Executions = append(p.Executions, e...)
	}), "execution", "executions"),
	mapper.Alias(list(dependencyList(""), func(p *model.Plugin, d ...model.Dependency) {
		p.Dependencies = append(p.Dependencies, d...)
	}), "dependency", "dependencies"),
	mapper.Alias(domField("goals", func(p *model.Plugin, d *model.Dom) { p.Goals = d }), "goal", "goals"),
	mapper.Alias(boolean(func(p *model.Plugin, v *bool) { p.Inherited = v }), "inherited"),
	mapper.Alias(domField("configuration", func(p *model.Plugin, d *model.Dom) { p.Configuration = d }), "configuration"),
)

var executionFields = mapper.New("execution",
	mapper.Alias(text(func(e *model.PluginExecution, v string) { e.ID = v }), "id"),
	mapper.Alias(text(func(e *model.PluginExecution, v string) { e.Phase = v }), "phase"),
	mapper.Alias(texts(func(e *model.PluginExecution, v ...string) { e.Goals = append(e.Goals, v...) }), "goal", "goals"),
	mapper.Alias(boolean(func(e *model.PluginExecution, v *bool) { e.Inherited = v }), "inherited"),
	mapper.Alias(domField("configuration", func(e *model.PluginExecution, d *model.Dom) { e.Configuration = d }), "configuration"),
)

func extensionIdent(e *model.Extension) string { return identity(e.GroupID, e.ArtifactID) }

func pluginIdent(p *model.Plugin) string { return identity(p.GroupID, p.ArtifactID) }

func addResources(b *model.Build, r ...model.Resource) { b.Resources = append(b.Resources, r...) }

func addTestResources(b *model.Build, r ...model.Resource) {
	b.TestResources = append(b.TestResources, r...)
}

func pluginManagementOf(b *model.Build) *model.PluginManagement {
	if b.PluginManagement == nil {
		b.PluginManagement = &model.PluginManagement{}
	}
	return b.PluginManagement
}

// deprecated wraps f so that using it reports a Deprecation pointing at
// use.
func deprecated[T any](use string, f field[T]) field[T] {
	return func(ds *decodeState, at scope, key string, n tree.Node, rec T) error {
		if err := f(ds, at, key, n, rec); err != nil {
			return err
		}
		ds.deprecated(at.key(key), use)
		return nil
	}
}

func deprecatedText[T any](use string, set func(T, string)) field[T] {
	return deprecated(use, text(set))
}

// decodePlugins decodes an array of plugin tables, or a table whose keys
// are compact "group:artifact[:version]" strings and whose values are a
// version or a table of the remaining fields.
func decodePlugins(ds *decodeState, at scope, n tree.Node) ([]model.Plugin, error) {
	switch n := n.(type) {
	case *tree.Array:
		out := make([]model.Plugin, 0, len(n.Elements))
		for i, el := range n.Elements {
			var p model.Plugin
			if err := decodeTable(ds, at.elem(i), el, &p, pluginFields, pluginIdent); err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	case *tree.Table:
		out := make([]model.Plugin, 0, n.Len())
		for _, key := range n.Keys() {
			v, _ := n.Get(key)
			var p model.Plugin
			if err := setCoordinates(at.String(), key, &p.GroupID, &p.ArtifactID, &p.Version); err != nil {
				return nil, err
			}
			if err := compactValue(ds, at.named(key), key, v, &p, pluginFields, pluginIdent, func(version string) {
				p.Version = version
			}); err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	default:
		return nil, shapeError(at.String(), "array or table", n)
	}
}

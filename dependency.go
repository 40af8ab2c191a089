package pomtoml

import (
	"strings"

	"github.com/KimNorgaard/go-pomtoml/internal/mapper"
	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

// dependencyScopes maps the keys of a [dependencies] table to the scope
// they assign. "provider" is an older spelling of "provided".
var dependencyScopes = map[string]string{
	"compile":  "compile",
	"provided": "provided",
	"provider": "provided",
	"runtime":  "runtime",
	"test":     "test",
	"system":   "system",
	"import":   "import",
}

var dependencyFields = mapper.New("dependency",
	mapper.Alias(text(func(d *model.Dependency, v string) { d.GroupID = v }), "group", "groupId"),
	mapper.Alias(text(func(d *model.Dependency, v string) { d.ArtifactID = v }), "artifact", "artifactId"),
	mapper.Alias(text(func(d *model.Dependency, v string) { d.Version = v }), "version"),
	mapper.Alias(text(func(d *model.Dependency, v string) { d.Type = v }), "type"),
	mapper.Alias(text(func(d *model.Dependency, v string) { d.Classifier = v }), "classifier"),
	mapper.Alias(text(func(d *model.Dependency, v string) { d.Scope = v }), "scope"),
	mapper.Alias(text(func(d *model.Dependency, v string) { d.SystemPath = v }), "systemPath"),
	mapper.Alias(boolean(func(d *model.Dependency, v *bool) { d.Optional = v }), "optional"),
	mapper.Alias(list(decodeExclusions, func(d *model.Dependency, e ...model.Exclusion) {
		d.Exclusions = append(d.Exclusions, e...)
	}), "exclusion", "exclusions"),
)

var exclusionFields = mapper.New("exclusion",
	mapper.Alias(text(func(e *model.Exclusion, v string) { e.GroupID = v }), "group", "groupId"),
	mapper.Alias(text(func(e *model.Exclusion, v string) { e.ArtifactID = v }), "artifact", "artifactId"),
)

var dependencyManagementFields = mapper.New("dependencyManagement",
	mapper.Alias(list(dependencyList(""), func(m *model.DependencyManagement, d ...model.Dependency) {
		m.Dependencies = append(m.Dependencies, d...)
	}), "dependency", "dependencies"),
)

func dependencyIdent(d *model.Dependency) string { return identity(d.GroupID, d.ArtifactID) }

func exclusionIdent(e *model.Exclusion) string { return identity(e.GroupID, e.ArtifactID) }

// identity names a record by its group and artifact once either is known.
func identity(group, artifact string) string {
	if group == "" && artifact == "" {
		return ""
	}
	return group + ":" + artifact
}

// dependencyList returns a decoder for a list of dependencies written as
// an array of tables and compact strings, or as a table of compact keys.
// A non-empty scope is assigned before any field is read, so an explicit
// scope field still wins.
func dependencyList(depScope string) func(*decodeState, scope, tree.Node) ([]model.Dependency, error) {
	return func(ds *decodeState, at scope, n tree.Node) ([]model.Dependency, error) {
		switch n := n.(type) {
		case *tree.Array:
			out := make([]model.Dependency, 0, len(n.Elements))
			for i, el := range n.Elements {
				d := model.Dependency{Scope: depScope}
				switch el := el.(type) {
				case *tree.String:
					if err := setCoordinates(at.elem(i).String(), el.Value, &d.GroupID, &d.ArtifactID, &d.Version); err != nil {
						return nil, err
					}
				case *tree.Table:
					if err := decodeTable(ds, at.elem(i), el, &d, dependencyFields, dependencyIdent); err != nil {
						return nil, err
					}
				default:
					return nil, shapeError(at.elem(i).String(), "string or table", el)
				}
				out = append(out, d)
			}
			return out, nil
		case *tree.Table:
			out := make([]model.Dependency, 0, n.Len())
			for _, key := range n.Keys() {
				v, _ := n.Get(key)
				d, err := compactDependency(ds, at, key, v, depScope)
				if err != nil {
					return nil, err
				}
				out = append(out, d)
			}
			return out, nil
		default:
			return nil, shapeError(at.String(), "array or table", n)
		}
	}
}

// scopedDependencies decodes the top-level [dependencies] table. Scope
// keys hold a dependency list each; keys containing ':' are compact
// dependencies without a scope.
func scopedDependencies(ds *decodeState, at scope, n tree.Node) ([]model.Dependency, error) {
	tbl, err := asTable(at.String(), n)
	if err != nil {
		return nil, err
	}
	var out []model.Dependency
	for _, key := range tbl.Keys() {
		v, _ := tbl.Get(key)
		if depScope, ok := dependencyScopes[mapper.CamelCase(key)]; ok {
			deps, err := dependencyList(depScope)(ds, at.child(key), v)
			if err != nil {
				return nil, err
			}
			out = append(out, deps...)
			continue
		}
		if strings.Contains(key, ":") {
			d, err := compactDependency(ds, at, key, v, "")
			if err != nil {
				return nil, err
			}
			out = append(out, d)
			continue
		}
		if err := ds.unknown(at.key(key)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// compactDependency decodes `"group:artifact[:version]" = value` where
// value is a version scalar or a table of the remaining fields.
func compactDependency(ds *decodeState, at scope, key string, v tree.Node, depScope string) (model.Dependency, error) {
	d := model.Dependency{Scope: depScope}
	if err := setCoordinates(at.String(), key, &d.GroupID, &d.ArtifactID, &d.Version); err != nil {
		return d, err
	}
	err := compactValue(ds, at.named(key), key, v, &d, dependencyFields, dependencyIdent, func(version string) {
		d.Version = version
	})
	return d, err
}

// compactValue applies the value of a compact key: a scalar replaces the
// version, a table is decoded with fields. An empty string leaves the
// version from the key in place.
func compactValue[R any](ds *decodeState, at scope, key string, v tree.Node, rec *R, fields *mapper.Table[field[*R]], ident func(*R) string, setVersion func(string)) error {
	switch v := v.(type) {
	case *tree.Table:
		return decodeTable(ds, at, v, rec, fields, ident)
	case *tree.Array:
		return &ShorthandError{Path: at.String(), Value: key, Reason: "value must be a version or a table"}
	}
	version, ok := tree.Text(v)
	if !ok {
		return &ShorthandError{Path: at.String(), Value: key, Reason: "value must be a version or a table"}
	}
	if version != "" {
		setVersion(version)
	}
	return nil
}

// setCoordinates splits a compact identity on ':' and assigns the parts
// in order. Trailing parts that are absent leave their field unset; more
// parts than fields is an error.
func setCoordinates(path, s string, fields ...*string) error {
	parts := strings.Split(s, ":")
	for len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > len(fields) {
		return &ShorthandError{Path: path, Value: s, Reason: tooManyParts[len(fields)]}
	}
	for i, p := range parts {
		if p != "" {
			*fields[i] = p
		}
	}
	return nil
}

var tooManyParts = map[int]string{
	2: "expected at most group:artifact",
	3: "expected at most group:artifact:version",
}

func decodeExclusions(ds *decodeState, at scope, n tree.Node) ([]model.Exclusion, error) {
	arr, ok := n.(*tree.Array)
	if !ok {
		return nil, shapeError(at.String(), "array", n)
	}
	out := make([]model.Exclusion, 0, len(arr.Elements))
	for i, el := range arr.Elements {
		var e model.Exclusion
		switch el := el.(type) {
		case *tree.String:
			if err := setCoordinates(at.elem(i).String(), el.Value, &e.GroupID, &e.ArtifactID); err != nil {
				return nil, err
			}
		case *tree.Table:
			if err := decodeTable(ds, at.elem(i), el, &e, exclusionFields, exclusionIdent); err != nil {
				return nil, err
			}
		default:
			return nil, shapeError(at.elem(i).String(), "string or table", el)
		}
		out = append(out, e)
	}
	return out, nil
}

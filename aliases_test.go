package pomtoml

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-pomtoml/internal/mapper"
	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

// aliasValues are tried in order until one decodes cleanly under the first
// spelling of an entry, preferring one that changes the record.
var aliasValues = []func() tree.Node{
	func() tree.Node { return &tree.String{Value: "v"} },
	func() tree.Node { return &tree.Boolean{Value: true} },
	func() tree.Node { return &tree.Array{Elements: []tree.Node{&tree.String{Value: "v"}}} },
	func() tree.Node { return namedTable() },
	func() tree.Node { return tree.NewTable() },
	func() tree.Node { return &tree.Array{Elements: []tree.Node{namedTable()}} },
	func() tree.Node { return &tree.Array{Elements: []tree.Node{tree.NewTable()}} },
}

func namedTable() *tree.Table {
	tbl := tree.NewTable()
	tbl.Set("name", &tree.String{Value: "v"})
	return tbl
}

// checkAliases verifies that every alias of tbl, written as is or
// hyphenated, resolves to an action, and that all spellings of an entry
// decode the same value into the same record.
func checkAliases[R any](t *testing.T, tbl *mapper.Table[field[*R]]) {
	t.Run(tbl.Name(), func(t *testing.T) {
		aliases := tbl.Aliases()
		require.NotEmpty(t, aliases)
		for _, alias := range aliases {
			_, ok := tbl.Lookup(alias)
			require.True(t, ok, alias)

			hyphenated := mapper.Hyphenate(alias)
			_, ok = tbl.Lookup(hyphenated)
			require.True(t, ok, hyphenated)
			require.Equal(t, alias, mapper.CamelCase(hyphenated))
		}

		decode := func(key string, value func() tree.Node) (*R, error) {
			doc := tree.NewTable()
			doc.Set(key, value())
			rec := new(R)
			return rec, decodeTable(newTestState(true), rootScope(), doc, rec, tbl, nil)
		}
		var zero R
		for _, group := range tbl.Groups() {
			var want *R
			var value func() tree.Node
			for _, v := range aliasValues {
				rec, err := decode(group[0], v)
				if err != nil {
					continue
				}
				if want == nil || reflect.DeepEqual(*want, zero) {
					want, value = rec, v
				}
				if !reflect.DeepEqual(*rec, zero) {
					break
				}
			}
			require.NotNil(t, want, "no value decodes under %q", group[0])

			for _, alias := range group {
				for _, key := range []string{alias, mapper.Hyphenate(alias)} {
					got, err := decode(key, value)
					require.NoError(t, err, key)
					require.Equal(t, want, got, key)
				}
			}
		}
	})
}

func TestAliasTables(t *testing.T) {
	checkAliases(t, rootFields)
	checkAliases(t, projectFields)
	checkAliases(t, parentFields)
	checkAliases(t, organizationFields)
	checkAliases(t, licenseFields)
	checkAliases(t, contributorFields)
	checkAliases(t, developerFields)
	checkAliases(t, mailingListFields)
	checkAliases(t, prerequisitesFields)
	checkAliases(t, scmFields)
	checkAliases(t, repositoryFields)
	checkAliases(t, repositoryPolicyFields)
	checkAliases(t, managementFields)
	checkAliases(t, issueManagementFields)
	checkAliases(t, ciManagementFields)
	checkAliases(t, notifierFields)
	checkAliases(t, distributionManagementFields)
	checkAliases(t, deploymentRepositoryFields)
	checkAliases(t, siteFields)
	checkAliases(t, relocationFields)
	checkAliases(t, dependencyManagementFields)
	checkAliases(t, dependencyFields)
	checkAliases(t, exclusionFields)
	checkAliases(t, buildFields)
	checkAliases(t, directoryFields)
	checkAliases(t, resourceFields)
	checkAliases(t, extensionFields)
	checkAliases(t, pluginManagementFields)
	checkAliases(t, pluginFields)
	checkAliases(t, executionFields)
}

// TestAliasEquivalence decodes the same value under every spelling of a
// text field and expects identical records.
func TestAliasEquivalence(t *testing.T) {
	spellings := func(aliases ...string) []string {
		var out []string
		for _, a := range aliases {
			out = append(out, a, mapper.Hyphenate(a))
		}
		return out
	}

	decodeDependency := func(t *testing.T, key string) model.Dependency {
		doc := tree.NewTable()
		doc.Set(key, &tree.String{Value: "org.example"})
		ds := newTestState(true)
		var d model.Dependency
		require.NoError(t, decodeTable(ds, rootScope(), doc, &d, dependencyFields, dependencyIdent))
		return d
	}
	for _, key := range spellings("group", "groupId") {
		require.Equal(t, model.Dependency{GroupID: "org.example"}, decodeDependency(t, key), key)
	}

	decodeNotifier := func(t *testing.T, key string) model.Notifier {
		doc := tree.NewTable()
		doc.Set(key, &tree.Boolean{Value: true})
		ds := newTestState(true)
		var n model.Notifier
		require.NoError(t, decodeTable(ds, rootScope(), doc, &n, notifierFields, nil))
		return n
	}
	yes := true
	for _, key := range spellings("onFailure", "sendOnFailure") {
		require.Equal(t, model.Notifier{SendOnFailure: &yes}, decodeNotifier(t, key), key)
	}

	decodeMailingList := func(t *testing.T, key string) model.MailingList {
		doc := tree.NewTable()
		doc.Set(key, &tree.Array{Elements: []tree.Node{&tree.String{Value: "a"}}})
		ds := newTestState(true)
		var l model.MailingList
		require.NoError(t, decodeTable(ds, rootScope(), doc, &l, mailingListFields, nil))
		return l
	}
	for _, key := range spellings("other", "archives", "otherArchive", "otherArchives") {
		require.Equal(t, model.MailingList{OtherArchives: []string{"a"}}, decodeMailingList(t, key), key)
	}
}

func TestScope(t *testing.T) {
	root := rootScope()
	require.Equal(t, "", root.String())
	require.Equal(t, "build", root.key("build"))

	plugins := root.child("build").child("plugins")
	require.Equal(t, "build.plugins", plugins.String())

	el := plugins.elem(2)
	require.Equal(t, "build.plugins[2]", el.String())

	var id string
	el.ident = func() string { return id }
	require.Equal(t, "build.plugins[2]", el.String())
	id = "g:a"
	require.Equal(t, "build.plugins[g:a].configuration", el.key("configuration"))

	require.Equal(t, "dependencies[g:a:1]", root.child("dependencies").named("g:a:1").String())
	require.Equal(t, `properties."java.version"`, root.child("properties").key("java.version"))
	require.Equal(t, `properties.""`, root.child("properties").key(""))
}

func TestPluralize(t *testing.T) {
	testCases := []struct {
		label, container, item string
	}{
		{"items", "items", "item"},
		{"item", "items", "item"},
		{"compilerArgs", "compilerArgs", "compilerArg"},
		{"s", "ss", "s"},
	}
	for _, tc := range testCases {
		container, item := pluralize(tc.label)
		require.Equal(t, tc.container, container, tc.label)
		require.Equal(t, tc.item, item, tc.label)
	}
}

func TestParseContributor(t *testing.T) {
	testCases := []struct {
		input string
		want  model.Contributor
	}{
		{"Jane Doe <jane@example.org>", model.Contributor{Name: "Jane Doe", Email: "jane@example.org"}},
		{"  Jane  ", model.Contributor{Name: "Jane"}},
		{"<jane@example.org>", model.Contributor{Email: "jane@example.org"}},
		{"Jane <jane", model.Contributor{Name: "Jane <jane"}},
	}
	for _, tc := range testCases {
		var c model.Contributor
		parseContributor(&c, tc.input)
		require.Equal(t, tc.want, c, tc.input)
	}
}

func TestDecodeState_Depth(t *testing.T) {
	ds := newTestState(false)
	ds.depth = 2

	leave, err := ds.enter("a")
	require.NoError(t, err)
	_, err = ds.enter("a.b")
	require.ErrorIs(t, err, ErrMaxDepth)
	require.EqualError(t, err, `pomtoml: reached max recursion depth at "a.b"`)

	leave()
	require.Equal(t, 2, ds.depth)
}

func newTestState(strict bool) *decodeState {
	o, _ := newOptions(nil)
	return &decodeState{strict: strict, logger: o.logger, depth: o.maxDepth}
}

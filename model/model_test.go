package model_test

import (
	"encoding/xml"
	"testing"

	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/stretchr/testify/require"
)

func TestDom_String(t *testing.T) {
	dom := &model.Dom{Name: "configuration", Children: []*model.Dom{
		{Name: "release", Value: "21"},
		{Name: "compilerArgs", Children: []*model.Dom{
			{Name: "compilerArg", Children: []*model.Dom{{Name: "value", Value: "-Xlint"}}},
		}},
	}}

	expected := "<configuration>\n" +
		"  <release>21</release>\n" +
		"  <compilerArgs>\n" +
		"    <compilerArg>\n" +
		"      <value>-Xlint</value>\n" +
		"    </compilerArg>\n" +
		"  </compilerArgs>\n" +
		"</configuration>"
	require.Equal(t, expected, dom.String())
	require.Equal(t, "21", dom.Child("release").Value)
	require.Nil(t, dom.Child("missing"))
}

func TestDom_XML(t *testing.T) {
	plugin := model.Plugin{
		GroupID:    "org.apache.maven.plugins",
		ArtifactID: "maven-compiler-plugin",
		Configuration: &model.Dom{Name: "configuration", Children: []*model.Dom{
			{Name: "release", Value: "21"},
			{Name: "items", Children: []*model.Dom{{Name: "item", Value: "a"}, {Name: "item", Value: "b"}}},
		}},
	}

	out, err := xml.Marshal(plugin)
	require.NoError(t, err)
	require.Equal(t,
		"<Plugin><groupId>org.apache.maven.plugins</groupId><artifactId>maven-compiler-plugin</artifactId>"+
			"<configuration><release>21</release><items><item>a</item><item>b</item></items></configuration></Plugin>",
		string(out))

	var back model.Plugin
	require.NoError(t, xml.Unmarshal(out, &back))
	require.Equal(t, plugin, back)
}

func TestProperties_XML(t *testing.T) {
	m := model.Model{GroupID: "g"}
	m.Properties.Set("project.build.sourceEncoding", "UTF-8")
	m.Properties.Set("java.version", "21")

	out, err := xml.Marshal(m)
	require.NoError(t, err)
	require.Equal(t,
		"<project><groupId>g</groupId><properties><java.version>21</java.version>"+
			"<project.build.sourceEncoding>UTF-8</project.build.sourceEncoding></properties></project>",
		string(out))

	var back model.Model
	require.NoError(t, xml.Unmarshal(out, &back))
	require.Equal(t, m.Properties, back.Properties)
	require.Equal(t, []string{"java.version", "project.build.sourceEncoding"}, back.Properties.Keys())
}

func TestDeveloper_XMLOrder(t *testing.T) {
	dev := model.Developer{ID: "jd", Contributor: model.Contributor{Name: "Jane", Roles: []string{"lead"}}}
	out, err := xml.Marshal(dev)
	require.NoError(t, err)
	require.Equal(t, "<Developer><id>jd</id><name>Jane</name><roles><role>lead</role></roles></Developer>", string(out))
}

func TestCoordinates(t *testing.T) {
	require.Equal(t, "g:a:1", (&model.Dependency{GroupID: "g", ArtifactID: "a", Version: "1"}).Coordinates())
	require.Equal(t, "g:a", (&model.Plugin{GroupID: "g", ArtifactID: "a"}).Coordinates())
	require.Equal(t, ":", (&model.Model{}).Coordinates())
}

func TestModel_XMLEmptyLists(t *testing.T) {
	m := model.Model{
		GroupID:      "g",
		Dependencies: []model.Dependency{{ArtifactID: "a", Exclusions: []model.Exclusion{}}},
		Build:        &model.Build{Plugins: []model.Plugin{{ArtifactID: "p"}}},
		SCM:          &model.SCM{ChildURLInheritAppendPath: "false", URL: "u"},
	}

	out, err := xml.Marshal(m)
	require.NoError(t, err)
	require.Equal(t,
		"<project><groupId>g</groupId>"+
			`<scm child.scm.url.inherit.append.path="false"><url>u</url></scm>`+
			"<dependencies><dependency><artifactId>a</artifactId></dependency></dependencies>"+
			"<build><plugins><plugin><artifactId>p</artifactId></plugin></plugins></build></project>",
		string(out))

	var back model.Model
	require.NoError(t, xml.Unmarshal(out, &back))
	require.Equal(t, "a", back.Dependencies[0].ArtifactID)
	require.Empty(t, back.Dependencies[0].Exclusions)
	require.Equal(t, "p", back.Build.Plugins[0].ArtifactID)

	out, err = xml.Marshal(model.Model{})
	require.NoError(t, err)
	require.Equal(t, "<project></project>", string(out))
}

package model

// Build holds the build configuration of a project.
type Build struct {
	SourceDirectory       string            `xml:"sourceDirectory,omitempty" yaml:"sourceDirectory,omitempty"`
	ScriptSourceDirectory string            `xml:"scriptSourceDirectory,omitempty" yaml:"scriptSourceDirectory,omitempty"`
	TestSourceDirectory   string            `xml:"testSourceDirectory,omitempty" yaml:"testSourceDirectory,omitempty"`
	OutputDirectory       string            `xml:"outputDirectory,omitempty" yaml:"outputDirectory,omitempty"`
	TestOutputDirectory   string            `xml:"testOutputDirectory,omitempty" yaml:"testOutputDirectory,omitempty"`
	Extensions            []Extension       `xml:"extensions>extension,omitempty" yaml:"extensions,omitempty"`
	DefaultGoal           string            `xml:"defaultGoal,omitempty" yaml:"defaultGoal,omitempty"`
	Resources             []Resource        `xml:"resources>resource,omitempty" yaml:"resources,omitempty"`
	TestResources         []Resource        `xml:"testResources>testResource,omitempty" yaml:"testResources,omitempty"`
	Directory             string            `xml:"directory,omitempty" yaml:"directory,omitempty"`
	FinalName             string            `xml:"finalName,omitempty" yaml:"finalName,omitempty"`
	Filters               []string          `xml:"filters>filter,omitempty" yaml:"filters,omitempty"`
	PluginManagement      *PluginManagement `xml:"pluginManagement,omitempty" yaml:"pluginManagement,omitempty"`
	Plugins               []Plugin          `xml:"plugins>plugin,omitempty" yaml:"plugins,omitempty"`
}

type Resource struct {
	TargetPath string   `xml:"targetPath,omitempty" yaml:"targetPath,omitempty"`
	Filtering  *bool    `xml:"filtering,omitempty" yaml:"filtering,omitempty"`
	Directory  string   `xml:"directory,omitempty" yaml:"directory,omitempty"`
	Includes   []string `xml:"includes>include,omitempty" yaml:"includes,omitempty"`
	Excludes   []string `xml:"excludes>exclude,omitempty" yaml:"excludes,omitempty"`
}

type Extension struct {
	GroupID    string `xml:"groupId,omitempty" yaml:"groupId,omitempty"`
	ArtifactID string `xml:"artifactId,omitempty" yaml:"artifactId,omitempty"`
	Version    string `xml:"version,omitempty" yaml:"version,omitempty"`
}

type PluginManagement struct {
	Plugins []Plugin `xml:"plugins>plugin,omitempty" yaml:"plugins,omitempty"`
}

// Plugin configures one build plugin. Goals and Configuration are free-form
// trees handed to the plugin unchanged.
type Plugin struct {
	GroupID       string            `xml:"groupId,omitempty" yaml:"groupId,omitempty"`
	ArtifactID    string            `xml:"artifactId,omitempty" yaml:"artifactId,omitempty"`
	Version       string            `xml:"version,omitempty" yaml:"version,omitempty"`
	Extensions    *bool             `xml:"extensions,omitempty" yaml:"extensions,omitempty"`
	Executions    []PluginExecution `xml:"executions>execution,omitempty" yaml:"executions,omitempty"`
	Dependencies  []Dependency      `xml:"dependencies>dependency,omitempty" yaml:"dependencies,omitempty"`
	Goals         *Dom              `xml:"goals,omitempty" yaml:"goals,omitempty"`
	Inherited     *bool             `xml:"inherited,omitempty" yaml:"inherited,omitempty"`
	Configuration *Dom              `xml:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// Coordinates returns "group:artifact[:version]".
func (p *Plugin) Coordinates() string {
	return coordinates(p.GroupID, p.ArtifactID, p.Version)
}

type PluginExecution struct {
	ID            string   `xml:"id,omitempty" yaml:"id,omitempty"`
	Phase         string   `xml:"phase,omitempty" yaml:"phase,omitempty"`
	Goals         []string `xml:"goals>goal,omitempty" yaml:"goals,omitempty"`
	Inherited     *bool    `xml:"inherited,omitempty" yaml:"inherited,omitempty"`
	Configuration *Dom     `xml:"configuration,omitempty" yaml:"configuration,omitempty"`
}

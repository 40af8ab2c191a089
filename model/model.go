// Package model holds the typed project descriptor produced by the
// transcoder. The types are plain records: unset strings are empty, unset
// booleans are nil and nested records are nil until a matching section is
// read. Every type carries xml tags mirroring the Maven POM element names
// and yaml tags used for the YAML view.
package model

import (
	"encoding/xml"
	"strings"
)

// Model is the root of a project descriptor.
type Model struct {
	XMLName xml.Name `xml:"project" yaml:"-"`

	ModelVersion           string                  `xml:"modelVersion,omitempty" yaml:"modelVersion,omitempty"`
	Parent                 *Parent                 `xml:"parent,omitempty" yaml:"parent,omitempty"`
	GroupID                string                  `xml:"groupId,omitempty" yaml:"groupId,omitempty"`
	ArtifactID             string                  `xml:"artifactId,omitempty" yaml:"artifactId,omitempty"`
	Version                string                  `xml:"version,omitempty" yaml:"version,omitempty"`
	Packaging              string                  `xml:"packaging,omitempty" yaml:"packaging,omitempty"`
	Name                   string                  `xml:"name,omitempty" yaml:"name,omitempty"`
	Description            string                  `xml:"description,omitempty" yaml:"description,omitempty"`
	URL                    string                  `xml:"url,omitempty" yaml:"url,omitempty"`
	InceptionYear          string                  `xml:"inceptionYear,omitempty" yaml:"inceptionYear,omitempty"`
	Organization           *Organization           `xml:"organization,omitempty" yaml:"organization,omitempty"`
	Licenses               []License               `xml:"licenses>license,omitempty" yaml:"licenses,omitempty"`
	Developers             []Developer             `xml:"developers>developer,omitempty" yaml:"developers,omitempty"`
	Contributors           []Contributor           `xml:"contributors>contributor,omitempty" yaml:"contributors,omitempty"`
	MailingLists           []MailingList           `xml:"mailingLists>mailingList,omitempty" yaml:"mailingLists,omitempty"`
	Prerequisites          *Prerequisites          `xml:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	Modules                []string                `xml:"modules>module,omitempty" yaml:"modules,omitempty"`
	SCM                    *SCM                    `xml:"scm,omitempty" yaml:"scm,omitempty"`
	IssueManagement        *IssueManagement        `xml:"issueManagement,omitempty" yaml:"issueManagement,omitempty"`
	CIManagement           *CIManagement           `xml:"ciManagement,omitempty" yaml:"ciManagement,omitempty"`
	DistributionManagement *DistributionManagement `xml:"distributionManagement,omitempty" yaml:"distributionManagement,omitempty"`
	Properties             Properties              `xml:"properties,omitempty" yaml:"properties,omitempty"`
	DependencyManagement   *DependencyManagement   `xml:"dependencyManagement,omitempty" yaml:"dependencyManagement,omitempty"`
	Dependencies           []Dependency            `xml:"dependencies>dependency,omitempty" yaml:"dependencies,omitempty"`
	Repositories           []Repository            `xml:"repositories>repository,omitempty" yaml:"repositories,omitempty"`
	PluginRepositories     []Repository            `xml:"pluginRepositories>pluginRepository,omitempty" yaml:"pluginRepositories,omitempty"`
	Build                  *Build                  `xml:"build,omitempty" yaml:"build,omitempty"`

	// PomFile is the descriptor the model was read from, if any.
	PomFile string `xml:"-" yaml:"-"`
}

// Coordinates returns "group:artifact:version" for the project.
func (m *Model) Coordinates() string {
	return coordinates(m.GroupID, m.ArtifactID, m.Version)
}

type Parent struct {
	GroupID      string `xml:"groupId,omitempty" yaml:"groupId,omitempty"`
	ArtifactID   string `xml:"artifactId,omitempty" yaml:"artifactId,omitempty"`
	Version      string `xml:"version,omitempty" yaml:"version,omitempty"`
	RelativePath string `xml:"relativePath,omitempty" yaml:"relativePath,omitempty"`
}

type Organization struct {
	Name string `xml:"name,omitempty" yaml:"name,omitempty"`
	URL  string `xml:"url,omitempty" yaml:"url,omitempty"`
}

type License struct {
	Name         string `xml:"name,omitempty" yaml:"name,omitempty"`
	URL          string `xml:"url,omitempty" yaml:"url,omitempty"`
	Distribution string `xml:"distribution,omitempty" yaml:"distribution,omitempty"`
	Comments     string `xml:"comments,omitempty" yaml:"comments,omitempty"`
}

// Contributor describes a person who contributed to the project without
// commit rights.
type Contributor struct {
	Name            string     `xml:"name,omitempty" yaml:"name,omitempty"`
	Email           string     `xml:"email,omitempty" yaml:"email,omitempty"`
	URL             string     `xml:"url,omitempty" yaml:"url,omitempty"`
	Organization    string     `xml:"organization,omitempty" yaml:"organization,omitempty"`
	OrganizationURL string     `xml:"organizationUrl,omitempty" yaml:"organizationUrl,omitempty"`
	Roles           []string   `xml:"roles>role,omitempty" yaml:"roles,omitempty"`
	Timezone        string     `xml:"timezone,omitempty" yaml:"timezone,omitempty"`
	Properties      Properties `xml:"properties,omitempty" yaml:"properties,omitempty"`
}

// Developer is a Contributor with an id.
type Developer struct {
	ID          string `xml:"id,omitempty" yaml:"id,omitempty"`
	Contributor `yaml:",inline"`
}

type MailingList struct {
	Name          string   `xml:"name,omitempty" yaml:"name,omitempty"`
	Subscribe     string   `xml:"subscribe,omitempty" yaml:"subscribe,omitempty"`
	Unsubscribe   string   `xml:"unsubscribe,omitempty" yaml:"unsubscribe,omitempty"`
	Post          string   `xml:"post,omitempty" yaml:"post,omitempty"`
	Archive       string   `xml:"archive,omitempty" yaml:"archive,omitempty"`
	OtherArchives []string `xml:"otherArchives>otherArchive,omitempty" yaml:"otherArchives,omitempty"`
}

type Prerequisites struct {
	Maven string `xml:"maven,omitempty" yaml:"maven,omitempty"`
}

// SCM describes the source control system. The child flags control whether
// child projects append their artifact id to the inherited URLs.
type SCM struct {
	ChildConnectionInheritAppendPath          string `xml:"child.scm.connection.inherit.append.path,attr,omitempty" yaml:"childScmConnectionInheritAppendPath,omitempty"`
	ChildDeveloperConnectionInheritAppendPath string `xml:"child.scm.developerConnection.inherit.append.path,attr,omitempty" yaml:"childScmDeveloperConnectionInheritAppendPath,omitempty"`
	ChildURLInheritAppendPath                 string `xml:"child.scm.url.inherit.append.path,attr,omitempty" yaml:"childScmUrlInheritAppendPath,omitempty"`

	Connection          string `xml:"connection,omitempty" yaml:"connection,omitempty"`
	DeveloperConnection string `xml:"developerConnection,omitempty" yaml:"developerConnection,omitempty"`
	Tag                 string `xml:"tag,omitempty" yaml:"tag,omitempty"`
	URL                 string `xml:"url,omitempty" yaml:"url,omitempty"`
}

type IssueManagement struct {
	System string `xml:"system,omitempty" yaml:"system,omitempty"`
	URL    string `xml:"url,omitempty" yaml:"url,omitempty"`
}

type CIManagement struct {
	System    string     `xml:"system,omitempty" yaml:"system,omitempty"`
	URL       string     `xml:"url,omitempty" yaml:"url,omitempty"`
	Notifiers []Notifier `xml:"notifiers>notifier,omitempty" yaml:"notifiers,omitempty"`
}

type Notifier struct {
	Type          string     `xml:"type,omitempty" yaml:"type,omitempty"`
	SendOnError   *bool      `xml:"sendOnError,omitempty" yaml:"sendOnError,omitempty"`
	SendOnFailure *bool      `xml:"sendOnFailure,omitempty" yaml:"sendOnFailure,omitempty"`
	SendOnSuccess *bool      `xml:"sendOnSuccess,omitempty" yaml:"sendOnSuccess,omitempty"`
	SendOnWarning *bool      `xml:"sendOnWarning,omitempty" yaml:"sendOnWarning,omitempty"`
	Address       string     `xml:"address,omitempty" yaml:"address,omitempty"`
	Configuration Properties `xml:"configuration,omitempty" yaml:"configuration,omitempty"`
}

type DistributionManagement struct {
	Repository         *DeploymentRepository `xml:"repository,omitempty" yaml:"repository,omitempty"`
	SnapshotRepository *DeploymentRepository `xml:"snapshotRepository,omitempty" yaml:"snapshotRepository,omitempty"`
	Site               *Site                 `xml:"site,omitempty" yaml:"site,omitempty"`
	DownloadURL        string                `xml:"downloadUrl,omitempty" yaml:"downloadUrl,omitempty"`
	Relocation         *Relocation           `xml:"relocation,omitempty" yaml:"relocation,omitempty"`
	Status             string                `xml:"status,omitempty" yaml:"status,omitempty"`
}

type DeploymentRepository struct {
	UniqueVersion *bool             `xml:"uniqueVersion,omitempty" yaml:"uniqueVersion,omitempty"`
	Releases      *RepositoryPolicy `xml:"releases,omitempty" yaml:"releases,omitempty"`
	Snapshots     *RepositoryPolicy `xml:"snapshots,omitempty" yaml:"snapshots,omitempty"`
	ID            string            `xml:"id,omitempty" yaml:"id,omitempty"`
	Name          string            `xml:"name,omitempty" yaml:"name,omitempty"`
	URL           string            `xml:"url,omitempty" yaml:"url,omitempty"`
	Layout        string            `xml:"layout,omitempty" yaml:"layout,omitempty"`
}

type Site struct {
	ChildURLInheritAppendPath string `xml:"child.site.url.inherit.append.path,attr,omitempty" yaml:"childSiteUrlInheritAppendPath,omitempty"`

	ID   string `xml:"id,omitempty" yaml:"id,omitempty"`
	Name string `xml:"name,omitempty" yaml:"name,omitempty"`
	URL  string `xml:"url,omitempty" yaml:"url,omitempty"`
}

type Relocation struct {
	GroupID    string `xml:"groupId,omitempty" yaml:"groupId,omitempty"`
	ArtifactID string `xml:"artifactId,omitempty" yaml:"artifactId,omitempty"`
	Version    string `xml:"version,omitempty" yaml:"version,omitempty"`
	Message    string `xml:"message,omitempty" yaml:"message,omitempty"`
}

type DependencyManagement struct {
	Dependencies []Dependency `xml:"dependencies>dependency,omitempty" yaml:"dependencies,omitempty"`
}

type Dependency struct {
	GroupID    string      `xml:"groupId,omitempty" yaml:"groupId,omitempty"`
	ArtifactID string      `xml:"artifactId,omitempty" yaml:"artifactId,omitempty"`
	Version    string      `xml:"version,omitempty" yaml:"version,omitempty"`
	Type       string      `xml:"type,omitempty" yaml:"type,omitempty"`
	Classifier string      `xml:"classifier,omitempty" yaml:"classifier,omitempty"`
	Scope      string      `xml:"scope,omitempty" yaml:"scope,omitempty"`
	SystemPath string      `xml:"systemPath,omitempty" yaml:"systemPath,omitempty"`
	Exclusions []Exclusion `xml:"exclusions>exclusion,omitempty" yaml:"exclusions,omitempty"`
	Optional   *bool       `xml:"optional,omitempty" yaml:"optional,omitempty"`
}

// Coordinates returns "group:artifact[:version]".
func (d *Dependency) Coordinates() string {
	return coordinates(d.GroupID, d.ArtifactID, d.Version)
}

type Exclusion struct {
	GroupID    string `xml:"groupId,omitempty" yaml:"groupId,omitempty"`
	ArtifactID string `xml:"artifactId,omitempty" yaml:"artifactId,omitempty"`
}

type Repository struct {
	Releases  *RepositoryPolicy `xml:"releases,omitempty" yaml:"releases,omitempty"`
	Snapshots *RepositoryPolicy `xml:"snapshots,omitempty" yaml:"snapshots,omitempty"`
	ID        string            `xml:"id,omitempty" yaml:"id,omitempty"`
	Name      string            `xml:"name,omitempty" yaml:"name,omitempty"`
	URL       string            `xml:"url,omitempty" yaml:"url,omitempty"`
	Layout    string            `xml:"layout,omitempty" yaml:"layout,omitempty"`
}

type RepositoryPolicy struct {
	Enabled        *bool  `xml:"enabled,omitempty" yaml:"enabled,omitempty"`
	UpdatePolicy   string `xml:"updatePolicy,omitempty" yaml:"updatePolicy,omitempty"`
	ChecksumPolicy string `xml:"checksumPolicy,omitempty" yaml:"checksumPolicy,omitempty"`
}

// coordinates joins the identity parts that are set. Unset leading parts
// stay as empty segments so the position of each part is preserved.
func coordinates(group, artifact, version string) string {
	parts := []string{group, artifact}
	if version != "" {
		parts = append(parts, version)
	}
	return strings.Join(parts, ":")
}

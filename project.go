package pomtoml

import (
	"github.com/KimNorgaard/go-pomtoml/internal/mapper"
	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

// rootFields lists the top-level sections of a descriptor.
var rootFields = mapper.New("root",
	mapper.Alias(modelAction(func(ds *decodeState, at scope, key string, n tree.Node, m *model.Model) error {
		return decodeTable(ds, at.child(key), n, m, projectFields, nil)
	}), "project"),
	mapper.Alias(one(pointer(record(parentFields, nil)), setParent), "parent"),
	mapper.Alias(modelAction(func(ds *decodeState, at scope, key string, n tree.Node, m *model.Model) error {
		return ds.properties(at.child(key), n, &m.Properties)
	}), "property", "properties"),
	mapper.Alias(one(pointer(record(scmFields, nil)), func(m *model.Model, s *model.SCM) { m.SCM = s }), "scm"),
	mapper.Alias(modelAction(func(ds *decodeState, at scope, key string, n tree.Node, m *model.Model) error {
		return decodeTable(ds, at.child(key), n, m, managementFields, nil)
	}), "management"),
	mapper.Alias(list(dependencyList(""), addDependencies), "dependency"),
	mapper.Alias(list(scopedDependencies, addDependencies), "dependencies"),
	mapper.Alias(modelAction(func(ds *decodeState, at scope, key string, n tree.Node, m *model.Model) error {
		return decodeTable(ds, at.child(key), n, buildOf(m), directoryFields, nil)
	}), "directory", "directories"),
	mapper.Alias(many(record(repositoryFields, repositoryIdent), func(m *model.Model, r ...model.Repository) {
		m.Repositories = append(m.Repositories, r...)
	}), "repository", "repositories"),
	mapper.Alias(many(record(repositoryFields, repositoryIdent), func(m *model.Model, r ...model.Repository) {
		m.PluginRepositories = append(m.PluginRepositories, r...)
	}), "pluginRepository", "pluginRepositories"),
	mapper.Alias(modelAction(func(ds *decodeState, at scope, key string, n tree.Node, m *model.Model) error {
		return decodeTable(ds, at.child(key), n, buildOf(m), buildFields, nil)
	}), "build"),
)

var projectFields = mapper.New("project",
	mapper.Alias(one(pointer(record(parentFields, nil)), setParent), "parent"),
	mapper.Alias(text(func(m *model.Model, v string) { m.ModelVersion = v }), "modelVersion"),
	mapper.Alias(text(func(m *model.Model, v string) { m.GroupID = v }), "group", "groupId"),
	mapper.Alias(text(func(m *model.Model, v string) { m.ArtifactID = v }), "artifact", "artifactId"),
	mapper.Alias(text(func(m *model.Model, v string) { m.Version = v }), "version"),
	mapper.Alias(text(func(m *model.Model, v string) { m.Packaging = v }), "packaging"),
	mapper.Alias(text(func(m *model.Model, v string) { m.Name = v }), "name"),
	mapper.Alias(text(func(m *model.Model, v string) { m.Description = v }), "description"),
	mapper.Alias(text(func(m *model.Model, v string) { m.URL = v }), "url"),
	mapper.Alias(text(func(m *model.Model, v string) { m.InceptionYear = v }), "inceptionYear"),
	mapper.Alias(one(pointer(record(organizationFields, nil)), func(m *model.Model, o *model.Organization) {
		m.Organization = o
	}), "organization"),
	mapper.Alias(many(record(licenseFields, func(l *model.License) string { return l.Name }), func(m *model.Model, l ...model.License) {
		m.Licenses = append(m.Licenses, l...)
	}), "license", "licenses"),
	mapper.Alias(list(people(developerFields, developerIdent, func(d *model.Developer) *model.Contributor { return &d.Contributor }), func(m *model.Model, d ...model.Developer) {
		m.Developers = append(m.Developers, d...)
	}), "developer", "developers"),
	mapper.Alias(list(people(contributorFields, contributorIdent, func(c *model.Contributor) *model.Contributor { return c }), func(m *model.Model, c ...model.Contributor) {
		m.Contributors = append(m.Contributors, c...)
	}), "contributor", "contributors"),
	mapper.Alias(many(record(mailingListFields, func(l *model.MailingList) string { return l.Name }), func(m *model.Model, l ...model.MailingList) {
		m.MailingLists = append(m.MailingLists, l...)
	}), "mailingList", "mailingLists"),
	mapper.Alias(one(pointer(record(prerequisitesFields, nil)), func(m *model.Model, p *model.Prerequisites) {
		m.Prerequisites = p
	}), "prerequisites"),
	mapper.Alias(texts(func(m *model.Model, v ...string) { m.Modules = append(m.Modules, v...) }), "module", "modules"),
)

var parentFields = mapper.New("parent",
	mapper.Alias(text(func(p *model.Parent, v string) { p.GroupID = v }), "group", "groupId"),
	mapper.Alias(text(func(p *model.Parent, v string) { p.ArtifactID = v }), "artifact", "artifactId"),
	mapper.Alias(text(func(p *model.Parent, v string) { p.Version = v }), "version"),
	mapper.Alias(text(func(p *model.Parent, v string) { p.RelativePath = v }), "relativePath"),
)

var organizationFields = mapper.New("organization",
	mapper.Alias(text(func(o *model.Organization, v string) { o.Name = v }), "name"),
	mapper.Alias(text(func(o *model.Organization, v string) { o.URL = v }), "url"),
)

var licenseFields = mapper.New("license",
	mapper.Alias(text(func(l *model.License, v string) { l.Name = v }), "name"),
	mapper.Alias(text(func(l *model.License, v string) { l.URL = v }), "url"),
	mapper.Alias(text(func(l *model.License, v string) { l.Distribution = v }), "distribution"),
	mapper.Alias(text(func(l *model.License, v string) { l.Comments = v }), "comments"),
)

var mailingListFields = mapper.New("mailingList",
	mapper.Alias(text(func(l *model.MailingList, v string) { l.Name = v }), "name"),
	mapper.Alias(text(func(l *model.MailingList, v string) { l.Subscribe = v }), "subscribe"),
	mapper.Alias(text(func(l *model.MailingList, v string) { l.Unsubscribe = v }), "unsubscribe"),
	mapper.Alias(text(func(l *model.MailingList, v string) { l.Post = v }), "post"),
	mapper.Alias(text(func(l *model.MailingList, v string) { l.Archive = v }), "archive"),
	mapper.Alias(texts(func(l *model.MailingList, v ...string) {
		l.OtherArchives = append(l.OtherArchives, v...)
	}), "other", "archives", "otherArchive", "otherArchives"),
)

var prerequisitesFields = mapper.New("prerequisites",
	mapper.Alias(text(func(p *model.Prerequisites, v string) { p.Maven = v }), "maven"),
)

var scmFields = mapper.New("scm",
	mapper.Alias[field[*model.SCM]](func(ds *decodeState, at scope, key string, n tree.Node, s *model.SCM) error {
		return ds.childFlags(at.child(key), n, map[string]*string{
			"scm.connection.inherit.append.path":          &s.ChildConnectionInheritAppendPath,
			"scm.developerConnection.inherit.append.path": &s.ChildDeveloperConnectionInheritAppendPath,
			"scm.url.inherit.append.path":                 &s.ChildURLInheritAppendPath,
		})
	}, "child"),
	mapper.Alias(text(func(s *model.SCM, v string) { s.Connection = v }), "connection"),
	mapper.Alias(text(func(s *model.SCM, v string) { s.DeveloperConnection = v }), "developerConnection"),
	mapper.Alias(text(func(s *model.SCM, v string) { s.Tag = v }), "tag"),
	mapper.Alias(text(func(s *model.SCM, v string) { s.URL = v }), "url"),
)

var repositoryFields = mapper.New("repository",
	mapper.Alias(one(pointer(record(repositoryPolicyFields, nil)), func(r *model.Repository, p *model.RepositoryPolicy) {
		r.Releases = p
	}), "releases"),
	mapper.Alias(one(pointer(record(repositoryPolicyFields, nil)), func(r *model.Repository, p *model.RepositoryPolicy) {
		r.Snapshots = p
	}), "snapshots"),
	mapper.Alias(text(func(r *model.Repository, v string) { r.ID = v }), "id"),
	mapper.Alias(text(func(r *model.Repository, v string) { r.Name = v }), "name"),
	mapper.Alias(text(func(r *model.Repository, v string) { r.URL = v }), "url"),
	mapper.Alias(text(func(r *model.Repository, v string) { r.Layout = v }), "layout"),
)

var repositoryPolicyFields = mapper.New("repositoryPolicy",
	mapper.Alias(boolean(func(p *model.RepositoryPolicy, v *bool) { p.Enabled = v }), "enabled"),
	mapper.Alias(text(func(p *model.RepositoryPolicy, v string) { p.UpdatePolicy = v }), "updatePolicy"),
	mapper.Alias(text(func(p *model.RepositoryPolicy, v string) { p.ChecksumPolicy = v }), "checksumPolicy"),
)

// modelAction is the action type of tables that populate the model itself.
type modelAction = field[*model.Model]

func setParent(m *model.Model, p *model.Parent) { m.Parent = p }

func repositoryIdent(r *model.Repository) string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}

func addDependencies(m *model.Model, d ...model.Dependency) {
	m.Dependencies = append(m.Dependencies, d...)
}

// buildOf returns the model's build section, creating it on first use so
// that [build], [directory] and [management.plugin] fill the same record.
func buildOf(m *model.Model) *model.Build {
	if m.Build == nil {
		m.Build = &model.Build{}
	}
	return m.Build
}

package pomtoml

import (
	"github.com/KimNorgaard/go-pomtoml/internal/mapper"
	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

var managementFields = mapper.New("management",
	mapper.Alias(one(pointer(record(issueManagementFields, nil)), func(m *model.Model, i *model.IssueManagement) {
		m.IssueManagement = i
	}), "issue"),
	mapper.Alias(one(pointer(record(ciManagementFields, nil)), func(m *model.Model, c *model.CIManagement) {
		m.CIManagement = c
	}), "ci"),
	mapper.Alias(one(pointer(record(distributionManagementFields, nil)), func(m *model.Model, d *model.DistributionManagement) {
		m.DistributionManagement = d
	}), "distribution"),
	mapper.Alias(modelAction(func(ds *decodeState, at scope, key string, n tree.Node, m *model.Model) error {
		if m.DependencyManagement == nil {
			m.DependencyManagement = &model.DependencyManagement{}
		}
		dm := m.DependencyManagement
		if _, ok := n.(*tree.Array); ok {
			return list(dependencyList(""), func(dm *model.DependencyManagement, d ...model.Dependency) {
				dm.Dependencies = append(dm.Dependencies, d...)
			})(ds, at, key, n, dm)
		}
		return decodeTable(ds, at.child(key), n, dm, dependencyManagementFields, nil)
	}), "dependency", "dependencies"),
	mapper.Alias(modelAction(func(ds *decodeState, at scope, key string, n tree.Node, m *model.Model) error {
		pm := pluginManagementOf(buildOf(m))
		if _, ok := n.(*tree.Array); ok {
			return list(decodePlugins, func(pm *model.PluginManagement, p ...model.Plugin) {
				pm.Plugins = append(pm.Plugins, p...)
			})(ds, at, key, n, pm)
		}
		return decodeTable(ds, at.child(key), n, pm, pluginManagementFields, nil)
	}), "plugin", "plugins"),
)

var issueManagementFields = mapper.New("issueManagement",
	mapper.Alias(text(func(i *model.IssueManagement, v string) { i.System = v }), "system"),
	mapper.Alias(text(func(i *model.IssueManagement, v string) { i.URL = v }), "url"),
)

var ciManagementFields = mapper.New("ciManagement",
	mapper.Alias(text(func(c *model.CIManagement, v string) { c.System = v }), "system"),
	mapper.Alias(text(func(c *model.CIManagement, v string) { c.URL = v }), "url"),
	mapper.Alias(many(record(notifierFields, func(n *model.Notifier) string { return n.Type }), func(c *model.CIManagement, n ...model.Notifier) {
		c.Notifiers = append(c.Notifiers, n...)
	}), "notifier", "notifiers"),
)

var notifierFields = mapper.New("notifier",
	mapper.Alias(text(func(n *model.Notifier, v string) { n.Type = v }), "type"),
	mapper.Alias(boolean(func(n *model.Notifier, v *bool) { n.SendOnError = v }), "onError", "sendOnError"),
	mapper.Alias(boolean(func(n *model.Notifier, v *bool) { n.SendOnFailure = v }), "onFailure", "sendOnFailure"),
	mapper.Alias(boolean(func(n *model.Notifier, v *bool) { n.SendOnSuccess = v }), "onSuccess", "sendOnSuccess"),
	mapper.Alias(boolean(func(n *model.Notifier, v *bool) { n.SendOnWarning = v }), "onWarning", "sendOnWarning"),
	mapper.Alias(text(func(n *model.Notifier, v string) { n.Address = v }), "address"),
	mapper.Alias[field[*model.Notifier]](func(ds *decodeState, at scope, key string, n tree.Node, r *model.Notifier) error {
		return ds.properties(at.child(key), n, &r.Configuration)
	}, "configuration"),
)

var distributionManagementFields = mapper.New("distributionManagement",
	mapper.Alias(one(pointer(record(deploymentRepositoryFields, deploymentIdent)), func(d *model.DistributionManagement, r *model.DeploymentRepository) {
		d.Repository = r
	}), "repository"),
	mapper.Alias(one(pointer(record(deploymentRepositoryFields, deploymentIdent)), func(d *model.DistributionManagement, r *model.DeploymentRepository) {
		d.SnapshotRepository = r
	}), "snapshotRepository"),
	mapper.Alias(one(pointer(record(siteFields, nil)), func(d *model.DistributionManagement, s *model.Site) {
		d.Site = s
	}), "site"),
	mapper.Alias(text(func(d *model.DistributionManagement, v string) { d.DownloadURL = v }), "downloadUrl"),
	mapper.Alias(one(pointer(record(relocationFields, nil)), func(d *model.DistributionManagement, r *model.Relocation) {
		d.Relocation = r
	}), "relocation"),
	mapper.Alias(text(func(d *model.DistributionManagement, v string) { d.Status = v }), "status"),
)

var deploymentRepositoryFields = mapper.New("deploymentRepository",
	mapper.Alias(boolean(func(r *model.DeploymentRepository, v *bool) { r.UniqueVersion = v }), "uniqueVersion"),
	mapper.Alias(one(pointer(record(repositoryPolicyFields, nil)), func(r *model.DeploymentRepository, p *model.RepositoryPolicy) {
		r.Releases = p
	}), "releases"),
	mapper.Alias(one(pointer(record(repositoryPolicyFields, nil)), func(r *model.DeploymentRepository, p *model.RepositoryPolicy) {
		r.Snapshots = p
	}), "snapshots"),
	mapper.Alias(text(func(r *model.DeploymentRepository, v string) { r.ID = v }), "id"),
	mapper.Alias(text(func(r *model.DeploymentRepository, v string) { r.Name = v }), "name"),
	mapper.Alias(text(func(r *model.DeploymentRepository, v string) { r.URL = v }), "url"),
	mapper.Alias(text(func(r *model.DeploymentRepository, v string) { r.Layout = v }), "layout"),
)

var siteFields = mapper.New("site",
	mapper.Alias[field[*model.Site]](func(ds *decodeState, at scope, key string, n tree.Node, s *model.Site) error {
		return ds.childFlags(at.child(key), n, map[string]*string{
			"site.url.inherit.append.path": &s.ChildURLInheritAppendPath,
		})
	}, "child"),
	mapper.Alias(text(func(s *model.Site, v string) { s.ID = v }), "id"),
	mapper.Alias(text(func(s *model.Site, v string) { s.Name = v }), "name"),
	mapper.Alias(text(func(s *model.Site, v string) { s.URL = v }), "url"),
)

var relocationFields = mapper.New("relocation",
	mapper.Alias(text(func(r *model.Relocation, v string) { r.GroupID = v }), "group", "groupId"),
	mapper.Alias(text(func(r *model.Relocation, v string) { r.ArtifactID = v }), "artifact", "artifactId"),
	mapper.Alias(text(func(r *model.Relocation, v string) { r.Version = v }), "version"),
	mapper.Alias(text(func(r *model.Relocation, v string) { r.Message = v }), "message"),
)

func deploymentIdent(r *model.DeploymentRepository) string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}

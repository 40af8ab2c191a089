package pomtoml

import (
	"strings"

	"github.com/KimNorgaard/go-pomtoml/internal/mapper"
	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

var contributorFields = mapper.New("contributor",
	contributorEntries(func(c *model.Contributor) *model.Contributor { return c })...,
)

var developerFields = mapper.New("developer",
	append(contributorEntries(func(d *model.Developer) *model.Contributor { return &d.Contributor }),
		mapper.Alias(text(func(d *model.Developer, v string) { d.ID = v }), "id"),
	)...,
)

// contributorEntries returns the fields shared by contributors and
// developers. c locates the contributor part of a record.
func contributorEntries[T any](c func(T) *model.Contributor) []mapper.Entry[field[T]] {
	return []mapper.Entry[field[T]]{
		mapper.Alias(text(func(r T, v string) { c(r).Name = v }), "name"),
		mapper.Alias(text(func(r T, v string) { c(r).Email = v }), "email"),
		mapper.Alias(text(func(r T, v string) { c(r).URL = v }), "url"),
		mapper.Alias(text(func(r T, v string) { c(r).Organization = v }), "organization"),
		mapper.Alias(text(func(r T, v string) { c(r).OrganizationURL = v }), "organizationUrl"),
		mapper.Alias(texts(func(r T, v ...string) { c(r).Roles = append(c(r).Roles, v...) }), "role", "roles"),
		mapper.Alias(text(func(r T, v string) { c(r).Timezone = v }), "timezone"),
		mapper.Alias[field[T]](func(ds *decodeState, at scope, key string, n tree.Node, r T) error {
			return ds.properties(at.child(key), n, &c(r).Properties)
		}, "properties"),
	}
}

func contributorIdent(c *model.Contributor) string { return c.Name }

func developerIdent(d *model.Developer) string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// people decodes an array whose elements are either full tables or
// "Name <email>" strings.
func people[R any](fields *mapper.Table[field[*R]], ident func(*R) string, contributor func(*R) *model.Contributor) func(*decodeState, scope, tree.Node) ([]R, error) {
	return func(ds *decodeState, at scope, n tree.Node) ([]R, error) {
		arr, ok := n.(*tree.Array)
		if !ok {
			return nil, shapeError(at.String(), "array", n)
		}
		out := make([]R, 0, len(arr.Elements))
		for i, el := range arr.Elements {
			var r R
			switch el := el.(type) {
			case *tree.String:
				parseContributor(contributor(&r), el.Value)
			case *tree.Table:
				if err := decodeTable(ds, at.elem(i), el, &r, fields, ident); err != nil {
					return nil, err
				}
			default:
				return nil, shapeError(at.elem(i).String(), "string or table", el)
			}
			out = append(out, r)
		}
		return out, nil
	}
}

// parseContributor fills c from "Display Name" or "Display Name <email>".
func parseContributor(c *model.Contributor, s string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '<'); i >= 0 && strings.HasSuffix(s, ">") {
		c.Name = strings.TrimSpace(s[:i])
		c.Email = strings.TrimSpace(s[i+1 : len(s)-1])
		return
	}
	c.Name = s
}

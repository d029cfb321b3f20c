// Package project defines the tracked project entity and its tag semantics.
package project

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"
)

// Project is a single tracked filesystem path.
type Project struct {
	Name       string    `json:"name"`         // unique within the registry
	Path       string    `json:"path"`         // canonical absolute path, unique within the registry
	Tags       []string  `json:"tags"`         // no duplicates
	IsBareRepo bool      `json:"is_bare_repo"` // computed once at add time
	AddedAt    time.Time `json:"added_at"`
}

// New creates a project stamped with the current time.
func New(name, path string, isBareRepo bool) Project {
	return Project{
		Name:       name,
		Path:       path,
		Tags:       []string{},
		IsBareRepo: isBareRepo,
		AddedAt:    time.Now().UTC(),
	}
}

// WithTags returns a copy of p carrying tags, dropping repeated entries.
func (p Project) WithTags(tags []string) Project {
	p.Tags = []string{}
	for _, t := range tags {
		p.AddTag(t)
	}
	return p
}

// AddTag adds tag unless it is already present.
func (p *Project) AddTag(tag string) {
	if p.HasTag(tag) {
		return
	}
	p.Tags = append(p.Tags, tag)
}

// RemoveTag removes every occurrence of tag.
func (p *Project) RemoveTag(tag string) {
	p.Tags = slices.DeleteFunc(p.Tags, func(t string) bool { return t == tag })
}

// HasTag reports whether the project carries tag.
func (p *Project) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// HasAnyTag reports whether the project shares at least one tag with tags.
// An empty tags list matches nothing.
func (p *Project) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the project name contains query.
func (p *Project) MatchesQuery(query string) bool {
	return strings.Contains(p.Name, query)
}

// UnmarshalJSON fills defaults for fields older documents may omit and
// rejects records missing a required field.
func (p *Project) UnmarshalJSON(data []byte) error {
	var r struct {
		Name       *string    `json:"name"`
		Path       *string    `json:"path"`
		Tags       []string   `json:"tags"`
		IsBareRepo bool       `json:"is_bare_repo"`
		AddedAt    *time.Time `json:"added_at"`
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	switch {
	case r.Name == nil:
		return errors.New("project record missing field \"name\"")
	case r.Path == nil:
		return errors.New("project record missing field \"path\"")
	case r.AddedAt == nil:
		return errors.New("project record missing field \"added_at\"")
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	*p = Project{
		Name:       *r.Name,
		Path:       *r.Path,
		Tags:       r.Tags,
		IsBareRepo: r.IsBareRepo,
		AddedAt:    *r.AddedAt,
	}
	return nil
}

// MarshalJSON keeps tags serialized as an array even when nil.
func (p Project) MarshalJSON() ([]byte, error) {
	type raw Project
	r := raw(p)
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return json.Marshal(r)
}

// Package mirror mirrors a Windmill workspace to a directory of YAML files
// and pushes such a directory back.
//
// Layout, relative to the root directory, for an object at path p:
//
//	p.<ext>            script content, extension from the language
//	p.script.yaml      script metadata
//	p.flow.yaml        flow definition
//	p.resource.yaml    resource type, value and description
//	p.variable.yaml    non-secret variable
//	p.schedule.yaml    schedule
package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is a synchronized object kind, in push order.
type Kind string

const (
	KindScript   Kind = "scripts"
	KindFlow     Kind = "flows"
	KindResource Kind = "resources"
	KindVariable Kind = "variables"
	KindSchedule Kind = "schedules"
)

// Kinds lists every kind in dependency order: schedules reference scripts
// and flows, so they go last.
var Kinds = []Kind{KindScript, KindFlow, KindResource, KindVariable, KindSchedule}

// Action is what Push does with one object.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionSkip   Action = "skip"
)

// Item is one planned object.
type Item struct {
	Kind   Kind
	Path   string
	Action Action
}

// Plan is the outcome of comparing a directory with a workspace.
type Plan struct {
	Items    map[Kind][]Item
	Warnings []string
}

func newPlan() *Plan {
	return &Plan{Items: make(map[Kind][]Item)}
}

func (p *Plan) add(kind Kind, path string, action Action) {
	p.Items[kind] = append(p.Items[kind], Item{Kind: kind, Path: path, Action: action})
}

// Count returns how many items carry action a.
func (p *Plan) Count(a Action) int {
	n := 0
	for _, items := range p.Items {
		for _, it := range items {
			if it.Action == a {
				n++
			}
		}
	}
	return n
}

// Result summarizes a pull or push.
type Result struct {
	Created int
	Updated int
	Skipped int
	Written int
	Failed  int
}

func (r Result) String() string {
	return fmt.Sprintf("%d created, %d updated, %d skipped, %d written, %d failed", r.Created, r.Updated, r.Skipped, r.Written, r.Failed)
}

// Options tunes Pull and Push.
type Options struct {
	// DryRun plans a push without writing to the workspace.
	DryRun bool
	// Exclude skips objects by kind and path.
	Exclude map[Kind][]string
	// Logger receives one line per step. Nil discards.
	Logger func(string)
}

func (o Options) log(format string, args ...any) {
	if o.Logger != nil {
		o.Logger(fmt.Sprintf(format, args...))
	}
}

func (o Options) excluded(kind Kind, path string) bool {
	for _, p := range o.Exclude[kind] {
		if p == path {
			return true
		}
	}
	return false
}

func cancelled(ctx context.Context, o Options) error {
	if err := ctx.Err(); err != nil {
		o.log("Sync cancelled")
		return err
	}
	return nil
}

// toDoc converts a DTO to a generic document through its JSON form, so the
// YAML files carry the wire field names. drop removes server-managed keys.
func toDoc(v any, drop ...string) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	for _, k := range drop {
		delete(doc, k)
	}
	return doc, nil
}

// fromDoc is the inverse of toDoc.
func fromDoc(doc any, v any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func marshalDoc(doc map[string]any) ([]byte, error) {
	return yaml.Marshal(doc)
}

func unmarshalDoc(b []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// localPath maps a Windmill path to a file under root. Paths that would
// escape root are rejected.
func localPath(root, path, suffix string) (string, error) {
	if path == "" || strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("invalid path %q", path)
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", fmt.Errorf("invalid path %q", path)
		}
	}
	return filepath.Join(root, filepath.FromSlash(path)+suffix), nil
}

package mirror

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

// localObject is one metadata file read from disk.
type localObject struct {
	kind Kind
	path string
	doc  map[string]any
}

// pending pairs a planned item with the call that applies it.
type pending struct {
	Item
	apply func(context.Context) error
}

// readDir collects every metadata file under dir, skipping hidden
// directories such as .git.
func readDir(dir string) (map[Kind][]localObject, error) {
	out := make(map[Kind][]localObject)
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		kind, path, ok := kindOf(filepath.ToSlash(rel))
		if !ok {
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		doc, err := unmarshalDoc(b)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", rel, err)
		}
		out[kind] = append(out[kind], localObject{kind: kind, path: path, doc: doc})
		return nil
	})
	return out, err
}

// Push reads dir and creates or updates every object it describes in
// workspace: existing objects are updated, others created. Scripts whose
// content and metadata match the deployed version are skipped. With
// DryRun only the plan is computed.
func Push(ctx context.Context, c *client.Client, workspace, dir string, o Options) (*Plan, Result, error) {
	var res Result
	objs, err := readDir(dir)
	if err != nil {
		return nil, res, fmt.Errorf("reading %s: %w", dir, err)
	}

	plan := newPlan()
	var work []pending
	excluded := 0
	o.log("=== Checking workspace %s ===", workspace)
	for _, kind := range Kinds {
		for _, obj := range objs[kind] {
			if err := cancelled(ctx, o); err != nil {
				return plan, res, err
			}
			if o.excluded(kind, obj.path) {
				o.log("  EXCLUDED: %s", obj.path)
				plan.add(kind, obj.path, ActionSkip)
				excluded++
				continue
			}
			p, err := prepare(ctx, c, workspace, dir, obj)
			if err != nil {
				return plan, res, fmt.Errorf("%s %s: %w", kind, obj.path, err)
			}
			plan.add(kind, obj.path, p.Action)
			work = append(work, p)
		}
	}
	if len(objs) == 0 {
		plan.Warnings = append(plan.Warnings, "no metadata files found under "+dir)
	}
	o.log("Plan: %d to create, %d to update, %d to skip", plan.Count(ActionCreate), plan.Count(ActionUpdate), plan.Count(ActionSkip))
	if o.DryRun {
		return plan, res, nil
	}

	o.log("")
	o.log("=== Pushing to %s ===", workspace)
	for _, p := range work {
		if err := cancelled(ctx, o); err != nil {
			return plan, res, err
		}
		if p.Action == ActionSkip {
			res.Skipped++
			o.log("  SKIP (unchanged): %s", p.Path)
			continue
		}
		if err := p.apply(ctx); err != nil {
			res.Failed++
			o.log("  FAIL: %s: %v", p.Path, err)
			continue
		}
		if p.Action == ActionCreate {
			res.Created++
			o.log("  CREATED: %s %s", p.Kind, p.Path)
		} else {
			res.Updated++
			o.log("  UPDATED: %s %s", p.Kind, p.Path)
		}
	}
	res.Skipped += excluded
	o.log("Push complete: %s", res)
	return plan, res, nil
}

// prepare decodes obj, checks the workspace and returns the planned call.
func prepare(ctx context.Context, c *client.Client, ws, dir string, obj localObject) (pending, error) {
	item := Item{Kind: obj.kind, Path: obj.path}
	switch obj.kind {
	case KindScript:
		return prepareScript(ctx, c, ws, dir, obj, item)
	case KindFlow:
		var body models.CreateFlowBody
		if err := fromDoc(obj.doc, &body); err != nil {
			return pending{}, err
		}
		body.Path = obj.path
		return upsert(item, func() (bool, error) { return c.ExistsFlowByPath(ctx, ws, obj.path) },
			func(ctx context.Context) error {
				_, err := c.CreateFlow(ctx, ws, body)
				return err
			},
			func(ctx context.Context) error {
				_, err := c.UpdateFlow(ctx, ws, obj.path, body)
				return err
			})
	case KindResource:
		var body models.CreateResource
		if err := fromDoc(obj.doc, &body); err != nil {
			return pending{}, err
		}
		body.Path = obj.path
		return upsert(item, func() (bool, error) { return c.ExistsResource(ctx, ws, obj.path) },
			func(ctx context.Context) error {
				_, err := c.CreateResource(ctx, ws, body, client.CreateResourceParams{})
				return err
			},
			func(ctx context.Context) error {
				_, err := c.UpdateResource(ctx, ws, obj.path, models.EditResource{Value: body.Value, Description: body.Description})
				return err
			})
	case KindVariable:
		var body models.CreateVariable
		if err := fromDoc(obj.doc, &body); err != nil {
			return pending{}, err
		}
		body.Path = obj.path
		return upsert(item, func() (bool, error) { return c.ExistsVariable(ctx, ws, obj.path) },
			func(ctx context.Context) error {
				_, err := c.CreateVariable(ctx, ws, body, client.VariableWriteParams{})
				return err
			},
			func(ctx context.Context) error {
				edit := models.EditVariable{Value: &body.Value, Description: &body.Description, IsSecret: &body.IsSecret}
				_, err := c.UpdateVariable(ctx, ws, obj.path, edit, client.VariableWriteParams{})
				return err
			})
	case KindSchedule:
		var body models.NewSchedule
		if err := fromDoc(obj.doc, &body); err != nil {
			return pending{}, err
		}
		body.Path = obj.path
		return upsert(item, func() (bool, error) { return c.ExistsSchedule(ctx, ws, obj.path) },
			func(ctx context.Context) error {
				_, err := c.CreateSchedule(ctx, ws, body)
				return err
			},
			func(ctx context.Context) error {
				if _, err := c.UpdateSchedule(ctx, ws, obj.path, editSchedule(body)); err != nil {
					return err
				}
				if body.Enabled == nil {
					return nil
				}
				_, err := c.SetScheduleEnabled(ctx, ws, obj.path, *body.Enabled)
				return err
			})
	}
	return pending{}, fmt.Errorf("unknown kind %q", obj.kind)
}

// upsert plans a create or an update depending on exists.
func upsert(item Item, exists func() (bool, error), create, update func(context.Context) error) (pending, error) {
	ok, err := exists()
	if err != nil {
		return pending{}, err
	}
	if ok {
		item.Action = ActionUpdate
		return pending{Item: item, apply: update}, nil
	}
	item.Action = ActionCreate
	return pending{Item: item, apply: create}, nil
}

func prepareScript(ctx context.Context, c *client.Client, ws, dir string, obj localObject, item Item) (pending, error) {
	var body models.NewScript
	if err := fromDoc(obj.doc, &body); err != nil {
		return pending{}, err
	}
	body.Path = obj.path
	p, err := localPath(dir, obj.path, "."+Extension(body.Language))
	if err != nil {
		return pending{}, err
	}
	content, err := os.ReadFile(p)
	if err != nil {
		return pending{}, fmt.Errorf("reading content: %w", err)
	}
	body.Content = string(content)

	exists, err := c.ExistsScriptByPath(ctx, ws, obj.path)
	if err != nil {
		return pending{}, err
	}
	if exists {
		remote, err := c.GetScriptByPath(ctx, ws, obj.path)
		if err != nil {
			return pending{}, err
		}
		if sameScript(remote, body) {
			item.Action = ActionSkip
			return pending{Item: item}, nil
		}
		body.ParentHash = &remote.Hash
		item.Action = ActionUpdate
	} else {
		item.Action = ActionCreate
	}
	return pending{Item: item, apply: func(ctx context.Context) error {
		_, err := c.CreateScript(ctx, ws, body)
		return err
	}}, nil
}

func sameScript(remote models.Script, local models.NewScript) bool {
	return remote.Content == local.Content &&
		remote.Summary == local.Summary &&
		remote.Description == local.Description &&
		remote.Language == local.Language
}

func editSchedule(s models.NewSchedule) models.EditSchedule {
	return models.EditSchedule{
		Schedule:            s.Schedule,
		CronVersion:         s.CronVersion,
		Timezone:            s.Timezone,
		Args:                s.Args,
		OnFailure:           s.OnFailure,
		OnFailureTimes:      s.OnFailureTimes,
		OnFailureExact:      s.OnFailureExact,
		OnFailureExtraArgs:  s.OnFailureExtraArgs,
		OnRecovery:          s.OnRecovery,
		OnRecoveryTimes:     s.OnRecoveryTimes,
		OnRecoveryExtraArgs: s.OnRecoveryExtraArgs,
		OnSuccess:           s.OnSuccess,
		OnSuccessExtraArgs:  s.OnSuccessExtraArgs,
		WsErrorHandlerMuted: s.WsErrorHandlerMuted,
		Retry:               s.Retry,
		NoFlowOverlap:       s.NoFlowOverlap,
		Summary:             s.Summary,
		Description:         s.Description,
		Tag:                 s.Tag,
		PausedUntil:         s.PausedUntil,
	}
}

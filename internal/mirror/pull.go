package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rflorenc/windmill-client/pkg/client"
	"github.com/rflorenc/windmill-client/pkg/models"
)

const perPage = 100

// listAll walks every page of a paginated list.
func listAll[T any](fetch func(client.Pagination) ([]T, error)) ([]T, error) {
	var out []T
	for page := int64(1); ; page++ {
		n := int64(perPage)
		items, err := fetch(client.Pagination{Page: &page, PerPage: &n})
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
		if len(items) < perPage {
			return out, nil
		}
	}
}

// Pull writes every script, flow, resource, non-secret variable and
// schedule of workspace under dir. Secret variables are skipped with a
// warning since their values cannot be read back in clear.
func Pull(ctx context.Context, c *client.Client, workspace, dir string, o Options) (Result, error) {
	var res Result
	steps := []struct {
		kind Kind
		run  func(context.Context, *client.Client, string, string, Options, *Result) error
	}{
		{KindScript, pullScripts},
		{KindFlow, pullFlows},
		{KindResource, pullResources},
		{KindVariable, pullVariables},
		{KindSchedule, pullSchedules},
	}
	for _, step := range steps {
		if err := cancelled(ctx, o); err != nil {
			return res, err
		}
		o.log("=== Pulling %s ===", step.kind)
		if err := step.run(ctx, c, workspace, dir, o, &res); err != nil {
			return res, fmt.Errorf("pulling %s: %w", step.kind, err)
		}
	}
	o.log("Pull complete: %s", res)
	return res, nil
}

func writeDoc(dir, path, suffix string, doc map[string]any) error {
	b, err := marshalDoc(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return writeFile(dir, path, suffix, b)
}

func writeFile(dir, path, suffix string, b []byte) error {
	p, err := localPath(dir, path, suffix)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

func pullScripts(ctx context.Context, c *client.Client, ws, dir string, o Options, res *Result) error {
	list, err := listAll(func(p client.Pagination) ([]models.Script, error) {
		return c.ListScripts(ctx, ws, client.ListScriptsParams{ListItemsParams: client.ListItemsParams{Pagination: p}})
	})
	if err != nil {
		return err
	}
	for _, item := range list {
		if o.excluded(KindScript, item.Path) {
			o.log("  EXCLUDED: %s", item.Path)
			res.Skipped++
			continue
		}
		sc, err := c.GetScriptByPath(ctx, ws, item.Path)
		if err != nil {
			return err
		}
		doc, err := toDoc(scriptMeta(sc), "path", "content", "parent_hash", "lock", "draft_only", "deployment_message")
		if err != nil {
			return err
		}
		if err := writeFile(dir, sc.Path, "."+Extension(sc.Language), []byte(sc.Content)); err != nil {
			return err
		}
		if err := writeDoc(dir, sc.Path, scriptSuffix, doc); err != nil {
			return err
		}
		res.Written++
		o.log("  WROTE: %s (%s)", sc.Path, sc.Language)
	}
	return nil
}

// scriptMeta keeps the deployable fields of a script.
func scriptMeta(sc models.Script) models.NewScript {
	return models.NewScript{
		Path:                   sc.Path,
		Summary:                sc.Summary,
		Description:            sc.Description,
		Content:                sc.Content,
		Schema:                 sc.Schema,
		IsTemplate:             &sc.IsTemplate,
		Language:               sc.Language,
		Kind:                   &sc.Kind,
		Tag:                    sc.Tag,
		Envs:                   sc.Envs,
		ConcurrentLimit:        sc.ConcurrentLimit,
		ConcurrencyTimeWindowS: sc.ConcurrencyTimeWindowS,
		CacheTTL:               sc.CacheTTL,
		DedicatedWorker:        sc.DedicatedWorker,
		WsErrorHandlerMuted:    sc.WsErrorHandlerMuted,
		Priority:               sc.Priority,
		RestartUnlessCancelled: sc.RestartUnlessCancelled,
		Timeout:                sc.Timeout,
		DeleteAfterUse:         sc.DeleteAfterUse,
		ConcurrencyKey:         sc.ConcurrencyKey,
		VisibleToRunnerOnly:    sc.VisibleToRunnerOnly,
		NoMainFunc:             &sc.NoMainFunc,
		Codebase:               sc.Codebase,
		HasPreprocessor:        &sc.HasPreprocessor,
		OnBehalfOfEmail:        sc.OnBehalfOfEmail,
	}
}

func pullFlows(ctx context.Context, c *client.Client, ws, dir string, o Options, res *Result) error {
	list, err := listAll(func(p client.Pagination) ([]client.FlowListItem, error) {
		return c.ListFlows(ctx, ws, client.ListFlowsParams{ListItemsParams: client.ListItemsParams{Pagination: p}})
	})
	if err != nil {
		return err
	}
	for _, item := range list {
		if o.excluded(KindFlow, item.Path) {
			o.log("  EXCLUDED: %s", item.Path)
			res.Skipped++
			continue
		}
		f, err := c.GetFlowByPath(ctx, ws, item.Path)
		if err != nil {
			return err
		}
		doc, err := toDoc(models.OpenFlowWPath{
			OpenFlow:            f.OpenFlow,
			Path:                f.Path,
			Tag:                 f.Tag,
			Timeout:             f.Timeout,
			Priority:            f.Priority,
			DedicatedWorker:     f.DedicatedWorker,
			WsErrorHandlerMuted: f.WsErrorHandlerMuted,
			VisibleToRunnerOnly: f.VisibleToRunnerOnly,
			OnBehalfOfEmail:     f.OnBehalfOfEmail,
		}, "path")
		if err != nil {
			return err
		}
		if err := writeDoc(dir, f.Path, flowSuffix, doc); err != nil {
			return err
		}
		res.Written++
		o.log("  WROTE: %s", f.Path)
	}
	return nil
}

func pullResources(ctx context.Context, c *client.Client, ws, dir string, o Options, res *Result) error {
	list, err := listAll(func(p client.Pagination) ([]models.ListableResource, error) {
		return c.ListResources(ctx, ws, client.ListResourcesParams{Pagination: p})
	})
	if err != nil {
		return err
	}
	for _, r := range list {
		if o.excluded(KindResource, r.Path) {
			o.log("  EXCLUDED: %s", r.Path)
			res.Skipped++
			continue
		}
		doc, err := toDoc(models.CreateResource{
			Path:         r.Path,
			Value:        r.Value,
			Description:  r.Description,
			ResourceType: r.ResourceType,
		}, "path")
		if err != nil {
			return err
		}
		if err := writeDoc(dir, r.Path, resourceSuffix, doc); err != nil {
			return err
		}
		res.Written++
		o.log("  WROTE: %s (%s)", r.Path, r.ResourceType)
	}
	return nil
}

func pullVariables(ctx context.Context, c *client.Client, ws, dir string, o Options, res *Result) error {
	list, err := c.ListVariables(ctx, ws)
	if err != nil {
		return err
	}
	for _, v := range list {
		if o.excluded(KindVariable, v.Path) {
			o.log("  EXCLUDED: %s", v.Path)
			res.Skipped++
			continue
		}
		if v.IsSecret {
			o.log("  SKIP (secret): %s", v.Path)
			res.Skipped++
			continue
		}
		body := models.CreateVariable{Path: v.Path, Account: v.Account, IsOAuth: v.IsOAuth, ExpiresAt: v.ExpiresAt}
		if v.Value != nil {
			body.Value = *v.Value
		}
		if v.Description != nil {
			body.Description = *v.Description
		}
		doc, err := toDoc(body, "path", "is_secret")
		if err != nil {
			return err
		}
		if err := writeDoc(dir, v.Path, variableSuffix, doc); err != nil {
			return err
		}
		res.Written++
		o.log("  WROTE: %s", v.Path)
	}
	return nil
}

func pullSchedules(ctx context.Context, c *client.Client, ws, dir string, o Options, res *Result) error {
	list, err := listAll(func(p client.Pagination) ([]models.Schedule, error) {
		return c.ListSchedules(ctx, ws, client.ListSchedulesParams{Pagination: p})
	})
	if err != nil {
		return err
	}
	for _, s := range list {
		if o.excluded(KindSchedule, s.Path) {
			o.log("  EXCLUDED: %s", s.Path)
			res.Skipped++
			continue
		}
		doc, err := toDoc(models.NewSchedule{
			Path:                s.Path,
			Schedule:            s.Schedule,
			CronVersion:         s.CronVersion,
			Timezone:            s.Timezone,
			ScriptPath:          s.ScriptPath,
			IsFlow:              s.IsFlow,
			Args:                s.Args,
			Enabled:             &s.Enabled,
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
		}, "path")
		if err != nil {
			return err
		}
		if err := writeDoc(dir, s.Path, scheduleSuffix, doc); err != nil {
			return err
		}
		res.Written++
		o.log("  WROTE: %s (%s)", s.Path, s.Schedule)
	}
	return nil
}

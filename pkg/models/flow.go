package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// OpenFlow is a flow definition without server metadata.
type OpenFlow struct {
	Summary     string         `json:"summary"`
	Description *string        `json:"description,omitempty"`
	Value       FlowValue      `json:"value"`
	Schema      map[string]any `json:"schema,omitempty"`
}

// OpenFlowWPath is an OpenFlow together with its path and deployment options.
type OpenFlowWPath struct {
	OpenFlow
	Path                string   `json:"path"`
	Tag                 *string  `json:"tag,omitempty"`
	Timeout             *float64 `json:"timeout,omitempty"`
	Priority            *int64   `json:"priority,omitempty"`
	DedicatedWorker     *bool    `json:"dedicated_worker,omitempty"`
	WsErrorHandlerMuted *bool    `json:"ws_error_handler_muted,omitempty"`
	VisibleToRunnerOnly *bool    `json:"visible_to_runner_only,omitempty"`
	OnBehalfOfEmail     *string  `json:"on_behalf_of_email,omitempty"`
}

// CreateFlowBody is the request body of flow create and update.
type CreateFlowBody struct {
	OpenFlowWPath
	DraftOnly         *bool   `json:"draft_only,omitempty"`
	DeploymentMessage *string `json:"deployment_message,omitempty"`
}

// FlowMetadata holds the server-managed fields of a stored flow.
type FlowMetadata struct {
	Path                string     `json:"path"`
	EditedBy            string     `json:"edited_by"`
	EditedAt            time.Time  `json:"edited_at"`
	Archived            bool       `json:"archived"`
	ExtraPerms          ExtraPerms `json:"extra_perms"`
	WorkspaceID         *string    `json:"workspace_id,omitempty"`
	Starred             *bool      `json:"starred,omitempty"`
	DraftOnly           *bool      `json:"draft_only,omitempty"`
	Tag                 *string    `json:"tag,omitempty"`
	WsErrorHandlerMuted *bool      `json:"ws_error_handler_muted,omitempty"`
	Priority            *int64     `json:"priority,omitempty"`
	DedicatedWorker     *bool      `json:"dedicated_worker,omitempty"`
	Timeout             *float64   `json:"timeout,omitempty"`
	VisibleToRunnerOnly *bool      `json:"visible_to_runner_only,omitempty"`
	OnBehalfOfEmail     *string    `json:"on_behalf_of_email,omitempty"`
}

// Flow is a stored flow as returned by the server.
type Flow struct {
	OpenFlow
	FlowMetadata
	LockErrorLogs *string `json:"lock_error_logs,omitempty"`
}

// FlowWithDraft is a flow plus its unpublished draft, if any.
type FlowWithDraft struct {
	Flow
	Draft *OpenFlow `json:"draft,omitempty"`
}

// FlowModules is an ordered list of steps. It encodes nil as [].
type FlowModules []FlowModule

func (m FlowModules) MarshalJSON() ([]byte, error) {
	return json.Marshal([]FlowModule(orEmpty(m)))
}

// FlowValue is the executable body of a flow.
type FlowValue struct {
	Modules                FlowModules `json:"modules"`
	FailureModule          *FlowModule `json:"failure_module,omitempty"`
	PreprocessorModule     *FlowModule `json:"preprocessor_module,omitempty"`
	SameWorker             *bool       `json:"same_worker,omitempty"`
	ConcurrentLimit        *float64    `json:"concurrent_limit,omitempty"`
	ConcurrencyKey         *string     `json:"concurrency_key,omitempty"`
	ConcurrencyTimeWindowS *float64    `json:"concurrency_time_window_s,omitempty"`
	SkipExpr               *string     `json:"skip_expr,omitempty"`
	CacheTTL               *float64    `json:"cache_ttl,omitempty"`
	Priority               *float64    `json:"priority,omitempty"`
	EarlyReturn            *string     `json:"early_return,omitempty"`
}

// FlowModule is one step of a flow.
type FlowModule struct {
	ID                  string             `json:"id"`
	Value               FlowModuleValue    `json:"value"`
	Summary             *string            `json:"summary,omitempty"`
	StopAfterIf         *StopAfterIf       `json:"stop_after_if,omitempty"`
	StopAfterAllItersIf *StopAfterIf       `json:"stop_after_all_iters_if,omitempty"`
	SkipIf              *SkipIf            `json:"skip_if,omitempty"`
	Sleep               InputTransform     `json:"sleep,omitempty"`
	CacheTTL            *float64           `json:"cache_ttl,omitempty"`
	Timeout             *float64           `json:"timeout,omitempty"`
	DeleteAfterUse      *bool              `json:"delete_after_use,omitempty"`
	Mock                *FlowModuleMock    `json:"mock,omitempty"`
	Suspend             *FlowModuleSuspend `json:"suspend,omitempty"`
	Priority            *float64           `json:"priority,omitempty"`
	ContinueOnError     *bool              `json:"continue_on_error,omitempty"`
	Retry               *Retry             `json:"retry,omitempty"`
}

func (m *FlowModule) UnmarshalJSON(b []byte) error {
	type alias FlowModule
	var raw struct {
		alias
		Value json.RawMessage `json:"value"`
		Sleep json.RawMessage `json:"sleep"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*m = FlowModule(raw.alias)
	v, err := DecodeFlowModuleValue(raw.Value)
	if err != nil {
		return fmt.Errorf("module %q: %w", m.ID, err)
	}
	m.Value = v
	if m.Sleep, err = decodeOptionalTransform(raw.Sleep); err != nil {
		return fmt.Errorf("module %q sleep: %w", m.ID, err)
	}
	return nil
}

// StopAfterIf stops the flow (or loop) early when Expr is truthy.
type StopAfterIf struct {
	Expr          string  `json:"expr"`
	SkipIfStopped *bool   `json:"skip_if_stopped,omitempty"`
	ErrorMessage  *string `json:"error_message,omitempty"`
}

// SkipIf skips a step when Expr is truthy.
type SkipIf struct {
	Expr string `json:"expr"`
}

// FlowModuleMock replaces a step's result with a fixed value.
type FlowModuleMock struct {
	Enabled     *bool `json:"enabled,omitempty"`
	ReturnValue any   `json:"return_value,omitempty"`
}

// FlowModuleSuspend makes a step wait for approval events.
type FlowModuleSuspend struct {
	RequiredEvents              *int64         `json:"required_events,omitempty"`
	Timeout                     *int64         `json:"timeout,omitempty"`
	ResumeForm                  *ResumeForm    `json:"resume_form,omitempty"`
	UserAuthRequired            *bool          `json:"user_auth_required,omitempty"`
	UserGroupsRequired          InputTransform `json:"user_groups_required,omitempty"`
	SelfApprovalDisabled        *bool          `json:"self_approval_disabled,omitempty"`
	HideCancel                  *bool          `json:"hide_cancel,omitempty"`
	ContinueOnDisapproveTimeout *bool          `json:"continue_on_disapprove_timeout,omitempty"`
}

func (s *FlowModuleSuspend) UnmarshalJSON(b []byte) error {
	type alias FlowModuleSuspend
	var raw struct {
		alias
		UserGroupsRequired json.RawMessage `json:"user_groups_required"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = FlowModuleSuspend(raw.alias)
	var err error
	s.UserGroupsRequired, err = decodeOptionalTransform(raw.UserGroupsRequired)
	return err
}

// ResumeForm is the JSON schema of the approval form.
type ResumeForm struct {
	Schema map[string]any `json:"schema,omitempty"`
}

// Retry configures automatic retries of a step or schedule.
type Retry struct {
	Constant    *RetryConstant    `json:"constant,omitempty"`
	Exponential *RetryExponential `json:"exponential,omitempty"`
}

type RetryConstant struct {
	Attempts *int64 `json:"attempts,omitempty"`
	Seconds  *int64 `json:"seconds,omitempty"`
}

type RetryExponential struct {
	Attempts     *int64 `json:"attempts,omitempty"`
	Multiplier   *int64 `json:"multiplier,omitempty"`
	Seconds      *int64 `json:"seconds,omitempty"`
	RandomFactor *int64 `json:"random_factor,omitempty"`
}

// FlowModuleValue is the body of a flow step. It is implemented by RawScript,
// PathScript, PathFlow, ForloopFlow, WhileloopFlow, BranchOne, BranchAll and
// Identity; the JSON "type" field selects the variant.
type FlowModuleValue interface {
	ModuleType() string
}

const (
	ModuleTypeRawScript     = "rawscript"
	ModuleTypeScript        = "script"
	ModuleTypeFlow          = "flow"
	ModuleTypeForloopFlow   = "forloopflow"
	ModuleTypeWhileloopFlow = "whileloopflow"
	ModuleTypeBranchOne     = "branchone"
	ModuleTypeBranchAll     = "branchall"
	ModuleTypeIdentity      = "identity"
)

// RawScript is an inline script step.
type RawScript struct {
	Content                string          `json:"content"`
	Language               ScriptLang      `json:"language"`
	InputTransforms        InputTransforms `json:"input_transforms"`
	Path                   *string         `json:"path,omitempty"`
	Lock                   *string         `json:"lock,omitempty"`
	Tag                    *string         `json:"tag,omitempty"`
	ConcurrentLimit        *float64        `json:"concurrent_limit,omitempty"`
	ConcurrencyTimeWindowS *float64        `json:"concurrency_time_window_s,omitempty"`
	CustomConcurrencyKey   *string         `json:"custom_concurrency_key,omitempty"`
	IsTrigger              *bool           `json:"is_trigger,omitempty"`
}

// PathScript runs a deployed script by path (and optionally pinned hash).
type PathScript struct {
	Path            string          `json:"path"`
	InputTransforms InputTransforms `json:"input_transforms"`
	Hash            *string         `json:"hash,omitempty"`
	TagOverride     *string         `json:"tag_override,omitempty"`
	IsTrigger       *bool           `json:"is_trigger,omitempty"`
}

// PathFlow runs a deployed flow as a sub-flow.
type PathFlow struct {
	Path            string          `json:"path"`
	InputTransforms InputTransforms `json:"input_transforms"`
}

// ForloopFlow iterates Modules over the values produced by Iterator.
type ForloopFlow struct {
	Iterator     InputTransform `json:"iterator"`
	Modules      FlowModules    `json:"modules"`
	SkipFailures bool           `json:"skip_failures"`
	Parallel     *bool          `json:"parallel,omitempty"`
	Parallelism  *int64         `json:"parallelism,omitempty"`
}

func (f *ForloopFlow) UnmarshalJSON(b []byte) error {
	type alias ForloopFlow
	var raw struct {
		alias
		Iterator json.RawMessage `json:"iterator"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*f = ForloopFlow(raw.alias)
	it, err := DecodeInputTransform(raw.Iterator)
	if err != nil {
		return fmt.Errorf("iterator: %w", err)
	}
	f.Iterator = it
	return nil
}

// WhileloopFlow repeats Modules until a stop_after_if condition holds.
type WhileloopFlow struct {
	Modules      FlowModules `json:"modules"`
	SkipFailures bool        `json:"skip_failures"`
	Parallel     *bool       `json:"parallel,omitempty"`
	Parallelism  *int64      `json:"parallelism,omitempty"`
}

// BranchOne runs the first branch whose Expr is truthy, else Default.
type BranchOne struct {
	Branches []BranchOneBranch `json:"branches"`
	Default  FlowModules       `json:"default"`
}

type BranchOneBranch struct {
	Expr    string      `json:"expr"`
	Modules FlowModules `json:"modules"`
	Summary *string     `json:"summary,omitempty"`
}

// BranchAll runs every branch, optionally in parallel.
type BranchAll struct {
	Branches []BranchAllBranch `json:"branches"`
	Parallel *bool             `json:"parallel,omitempty"`
}

type BranchAllBranch struct {
	Modules     FlowModules `json:"modules"`
	Summary     *string     `json:"summary,omitempty"`
	SkipFailure *bool       `json:"skip_failure,omitempty"`
}

// Identity passes its input through unchanged.
type Identity struct {
	Flow *bool `json:"flow,omitempty"`
}

func (RawScript) ModuleType() string     { return ModuleTypeRawScript }
func (PathScript) ModuleType() string    { return ModuleTypeScript }
func (PathFlow) ModuleType() string      { return ModuleTypeFlow }
func (ForloopFlow) ModuleType() string   { return ModuleTypeForloopFlow }
func (WhileloopFlow) ModuleType() string { return ModuleTypeWhileloopFlow }
func (BranchOne) ModuleType() string     { return ModuleTypeBranchOne }
func (BranchAll) ModuleType() string     { return ModuleTypeBranchAll }
func (Identity) ModuleType() string      { return ModuleTypeIdentity }

func (v RawScript) MarshalJSON() ([]byte, error) {
	type alias RawScript
	return marshalTagged(v.ModuleType(), alias(v))
}

func (v PathScript) MarshalJSON() ([]byte, error) {
	type alias PathScript
	return marshalTagged(v.ModuleType(), alias(v))
}

func (v PathFlow) MarshalJSON() ([]byte, error) {
	type alias PathFlow
	return marshalTagged(v.ModuleType(), alias(v))
}

func (v ForloopFlow) MarshalJSON() ([]byte, error) {
	type alias ForloopFlow
	return marshalTagged(v.ModuleType(), alias(v))
}

func (v WhileloopFlow) MarshalJSON() ([]byte, error) {
	type alias WhileloopFlow
	return marshalTagged(v.ModuleType(), alias(v))
}

func (v BranchOne) MarshalJSON() ([]byte, error) {
	type alias BranchOne
	v.Branches = orEmpty(v.Branches)
	return marshalTagged(v.ModuleType(), alias(v))
}

func (v BranchAll) MarshalJSON() ([]byte, error) {
	type alias BranchAll
	v.Branches = orEmpty(v.Branches)
	return marshalTagged(v.ModuleType(), alias(v))
}

func (v Identity) MarshalJSON() ([]byte, error) {
	type alias Identity
	return marshalTagged(v.ModuleType(), alias(v))
}

// DecodeFlowModuleValue decodes a step body by its "type" discriminator.
func DecodeFlowModuleValue(b []byte) (FlowModuleValue, error) {
	tag, err := peekType(b)
	if err != nil {
		return nil, err
	}
	switch tag {
	case ModuleTypeRawScript:
		return decodeModule[RawScript](b)
	case ModuleTypeScript:
		return decodeModule[PathScript](b)
	case ModuleTypeFlow:
		return decodeModule[PathFlow](b)
	case ModuleTypeForloopFlow:
		return decodeModule[ForloopFlow](b)
	case ModuleTypeWhileloopFlow:
		return decodeModule[WhileloopFlow](b)
	case ModuleTypeBranchOne:
		return decodeModule[BranchOne](b)
	case ModuleTypeBranchAll:
		return decodeModule[BranchAll](b)
	case ModuleTypeIdentity:
		return decodeModule[Identity](b)
	}
	return nil, fmt.Errorf("unknown flow module type %q", tag)
}

// InputTransform computes a step input. It is implemented by StaticTransform
// and JavascriptTransform.
type InputTransform interface {
	TransformType() string
}

// StaticTransform supplies a literal value.
type StaticTransform struct {
	Value any `json:"value,omitempty"`
}

// JavascriptTransform evaluates Expr against the flow context.
type JavascriptTransform struct {
	Expr string `json:"expr"`
}

func (StaticTransform) TransformType() string     { return "static" }
func (JavascriptTransform) TransformType() string { return "javascript" }

func (v StaticTransform) MarshalJSON() ([]byte, error) {
	type alias StaticTransform
	return marshalTagged(v.TransformType(), alias(v))
}

func (v JavascriptTransform) MarshalJSON() ([]byte, error) {
	type alias JavascriptTransform
	return marshalTagged(v.TransformType(), alias(v))
}

// DecodeInputTransform decodes an input transform by its "type" field.
func DecodeInputTransform(b []byte) (InputTransform, error) {
	tag, err := peekType(b)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "static":
		return decodeTransform[StaticTransform](b)
	case "javascript":
		return decodeTransform[JavascriptTransform](b)
	}
	return nil, fmt.Errorf("unknown input transform type %q", tag)
}

func decodeOptionalTransform(b json.RawMessage) (InputTransform, error) {
	if len(b) == 0 || bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil, nil
	}
	return DecodeInputTransform(b)
}

// InputTransforms maps step argument names to their transforms.
type InputTransforms map[string]InputTransform

func (m InputTransforms) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]InputTransform(m))
}

func (m *InputTransforms) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*m = nil
		return nil
	}
	out := make(InputTransforms, len(raw))
	for k, v := range raw {
		t, err := DecodeInputTransform(v)
		if err != nil {
			return fmt.Errorf("input %q: %w", k, err)
		}
		out[k] = t
	}
	*m = out
	return nil
}

// FlowPreview runs an unsaved flow definition.
type FlowPreview struct {
	Value         FlowValue      `json:"value"`
	Path          *string        `json:"path,omitempty"`
	Args          ScriptArgs     `json:"args"`
	Tag           *string        `json:"tag,omitempty"`
	RestartedFrom *RestartedFrom `json:"restarted_from,omitempty"`
}

// RestartedFrom points a flow preview at a step of a previous run.
type RestartedFrom struct {
	FlowJobID          *string `json:"flow_job_id,omitempty"`
	StepID             *string `json:"step_id,omitempty"`
	BranchOrIterationN *int64  `json:"branch_or_iteration_n,omitempty"`
}

// FlowStatus is the per-step progress of a running or finished flow.
type FlowStatus struct {
	Step               int64                   `json:"step"`
	Modules            []FlowStatusModule      `json:"modules"`
	UserStates         map[string]any          `json:"user_states,omitempty"`
	PreprocessorModule *FlowStatusModule       `json:"preprocessor_module,omitempty"`
	FailureModule      FlowStatusFailureModule `json:"failure_module"`
	Retry              *FlowStatusRetry        `json:"retry,omitempty"`
}

// FlowStatusFailureModule is the status of a flow's failure handler step.
type FlowStatusFailureModule struct {
	FlowStatusModule
	ParentModule *string `json:"parent_module,omitempty"`
}

type FlowStatusRetry struct {
	FailCount  *int64   `json:"fail_count,omitempty"`
	FailedJobs []string `json:"failed_jobs,omitempty"`
}

type FlowStatusModule struct {
	Type            FlowStatusModuleType `json:"type"`
	ID              *string              `json:"id,omitempty"`
	Job             *string              `json:"job,omitempty"`
	Count           *int64               `json:"count,omitempty"`
	Progress        *int64               `json:"progress,omitempty"`
	Iterator        *FlowStatusIterator  `json:"iterator,omitempty"`
	FlowJobs        []string             `json:"flow_jobs,omitempty"`
	FlowJobsSuccess []bool               `json:"flow_jobs_success,omitempty"`
	BranchChosen    *BranchChosen        `json:"branch_chosen,omitempty"`
	Branchall       *BranchAllStatus     `json:"branchall,omitempty"`
	Approvers       []Approver           `json:"approvers,omitempty"`
	FailedRetries   []string             `json:"failed_retries,omitempty"`
	Skipped         *bool                `json:"skipped,omitempty"`
}

type FlowStatusIterator struct {
	Index  *int64 `json:"index,omitempty"`
	Itered []any  `json:"itered,omitempty"`
	Args   any    `json:"args,omitempty"`
}

type BranchChosen struct {
	Type   BranchChosenType `json:"type"`
	Branch *int64           `json:"branch,omitempty"`
}

type BranchAllStatus struct {
	Branch int64 `json:"branch"`
	Len    int64 `json:"len"`
}

type Approver struct {
	ResumeID int64  `json:"resume_id"`
	Approver string `json:"approver"`
}

func peekType(b []byte) (string, error) {
	var head struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return "", err
	}
	if head.Type == nil {
		return "", fmt.Errorf("missing \"type\" discriminator")
	}
	return *head.Type, nil
}

func decodeModule[T FlowModuleValue](b []byte) (FlowModuleValue, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeTransform[T InputTransform](b []byte) (InputTransform, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// marshalTagged encodes v and prepends a "type" member set to tag.
func marshalTagged(tag string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+len(tag)+10)
	out = append(out, `{"type":`...)
	out = strconv.AppendQuote(out, tag)
	if len(body) > 2 {
		out = append(out, ',')
		out = append(out, body[1:]...)
	} else {
		out = append(out, '}')
	}
	return out, nil
}

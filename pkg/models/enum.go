package models

import (
	"fmt"
	"slices"
)

// EnumError reports a wire literal that is not part of an enum's closed set.
type EnumError struct {
	Enum  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Enum, e.Value)
}

func parseEnum[T ~string](enum string, values []T, s string) (T, error) {
	for _, v := range values {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, &EnumError{Enum: enum, Value: s}
}

func unmarshalEnum[T ~string](dst *T, enum string, values []T, b []byte) error {
	v, err := parseEnum(enum, values, string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// AIProvider identifies the backend of a workspace AI resource.
type AIProvider string

const (
	AIProviderOpenAI     AIProvider = "openai"
	AIProviderAnthropic  AIProvider = "anthropic"
	AIProviderMistral    AIProvider = "mistral"
	AIProviderDeepseek   AIProvider = "deepseek"
	AIProviderGoogleAI   AIProvider = "googleai"
	AIProviderGroq       AIProvider = "groq"
	AIProviderOpenRouter AIProvider = "openrouter"
	AIProviderCustomAI   AIProvider = "customai"
)

var aiProviderValues = []AIProvider{
	AIProviderOpenAI, AIProviderAnthropic, AIProviderMistral, AIProviderDeepseek,
	AIProviderGoogleAI, AIProviderGroq, AIProviderOpenRouter, AIProviderCustomAI,
}

func AIProviderValues() []AIProvider { return slices.Clone(aiProviderValues) }
func ParseAIProvider(s string) (AIProvider, error) {
	return parseEnum("AIProvider", aiProviderValues, s)
}
func (v AIProvider) String() string { return string(v) }
func (v *AIProvider) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "AIProvider", aiProviderValues, b)
}

// AppExecutionMode controls whose permissions an app runs with.
type AppExecutionMode string

const (
	AppExecutionModeViewer    AppExecutionMode = "viewer"
	AppExecutionModePublisher AppExecutionMode = "publisher"
	AppExecutionModeAnonymous AppExecutionMode = "anonymous"
)

var appExecutionModeValues = []AppExecutionMode{
	AppExecutionModeViewer, AppExecutionModePublisher, AppExecutionModeAnonymous,
}

func AppExecutionModeValues() []AppExecutionMode { return slices.Clone(appExecutionModeValues) }
func ParseAppExecutionMode(s string) (AppExecutionMode, error) {
	return parseEnum("AppExecutionMode", appExecutionModeValues, s)
}
func (v AppExecutionMode) String() string { return string(v) }
func (v *AppExecutionMode) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "AppExecutionMode", appExecutionModeValues, b)
}

// AuditLogActionKind is the coarse class of an audited action.
type AuditLogActionKind string

const (
	AuditLogActionCreated AuditLogActionKind = "Created"
	AuditLogActionUpdated AuditLogActionKind = "Updated"
	AuditLogActionDelete  AuditLogActionKind = "Delete"
	AuditLogActionExecute AuditLogActionKind = "Execute"
)

var auditLogActionKindValues = []AuditLogActionKind{
	AuditLogActionCreated, AuditLogActionUpdated, AuditLogActionDelete, AuditLogActionExecute,
}

func AuditLogActionKindValues() []AuditLogActionKind {
	return slices.Clone(auditLogActionKindValues)
}
func ParseAuditLogActionKind(s string) (AuditLogActionKind, error) {
	return parseEnum("AuditLogActionKind", auditLogActionKindValues, s)
}
func (v AuditLogActionKind) String() string { return string(v) }
func (v *AuditLogActionKind) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "AuditLogActionKind", auditLogActionKindValues, b)
}

// AuditOperation is the dotted operation name recorded in the audit log.
type AuditOperation string

const (
	AuditOperationJobsRun                        AuditOperation = "jobs.run"
	AuditOperationJobsRunScript                  AuditOperation = "jobs.run.script"
	AuditOperationJobsRunPreview                 AuditOperation = "jobs.run.preview"
	AuditOperationJobsRunFlow                    AuditOperation = "jobs.run.flow"
	AuditOperationJobsRunFlowPreview             AuditOperation = "jobs.run.flow_preview"
	AuditOperationJobsRunScriptHub               AuditOperation = "jobs.run.script_hub"
	AuditOperationJobsRunDependencies            AuditOperation = "jobs.run.dependencies"
	AuditOperationJobsRunIdentity                AuditOperation = "jobs.run.identity"
	AuditOperationJobsRunNoop                    AuditOperation = "jobs.run.noop"
	AuditOperationJobsFlowDependencies           AuditOperation = "jobs.flow_dependencies"
	AuditOperationJobs                           AuditOperation = "jobs"
	AuditOperationJobsCancel                     AuditOperation = "jobs.cancel"
	AuditOperationJobsForceCancel                AuditOperation = "jobs.force_cancel"
	AuditOperationJobsDisapproval                AuditOperation = "jobs.disapproval"
	AuditOperationJobsDelete                     AuditOperation = "jobs.delete"
	AuditOperationAccountDelete                  AuditOperation = "account.delete"
	AuditOperationAIRequest                      AuditOperation = "ai.request"
	AuditOperationResourcesCreate                AuditOperation = "resources.create"
	AuditOperationResourcesUpdate                AuditOperation = "resources.update"
	AuditOperationResourcesDelete                AuditOperation = "resources.delete"
	AuditOperationResourceTypesCreate            AuditOperation = "resource_types.create"
	AuditOperationResourceTypesUpdate            AuditOperation = "resource_types.update"
	AuditOperationResourceTypesDelete            AuditOperation = "resource_types.delete"
	AuditOperationScheduleCreate                 AuditOperation = "schedule.create"
	AuditOperationScheduleSetEnabled             AuditOperation = "schedule.setenabled"
	AuditOperationScheduleEdit                   AuditOperation = "schedule.edit"
	AuditOperationScheduleDelete                 AuditOperation = "schedule.delete"
	AuditOperationScriptsCreate                  AuditOperation = "scripts.create"
	AuditOperationScriptsUpdate                  AuditOperation = "scripts.update"
	AuditOperationScriptsArchive                 AuditOperation = "scripts.archive"
	AuditOperationScriptsDelete                  AuditOperation = "scripts.delete"
	AuditOperationUsersCreate                    AuditOperation = "users.create"
	AuditOperationUsersDelete                    AuditOperation = "users.delete"
	AuditOperationUsersUpdate                    AuditOperation = "users.update"
	AuditOperationUsersLogin                     AuditOperation = "users.login"
	AuditOperationUsersLoginFailure              AuditOperation = "users.login_failure"
	AuditOperationUsersLogout                    AuditOperation = "users.logout"
	AuditOperationUsersAcceptInvite              AuditOperation = "users.accept_invite"
	AuditOperationUsersDeclineInvite             AuditOperation = "users.decline_invite"
	AuditOperationUsersTokenCreate               AuditOperation = "users.token.create"
	AuditOperationUsersTokenDelete               AuditOperation = "users.token.delete"
	AuditOperationUsersAddToWorkspace            AuditOperation = "users.add_to_workspace"
	AuditOperationUsersAddGlobal                 AuditOperation = "users.add_global"
	AuditOperationUsersSetPassword               AuditOperation = "users.setpassword"
	AuditOperationUsersImpersonate               AuditOperation = "users.impersonate"
	AuditOperationUsersLeaveWorkspace            AuditOperation = "users.leave_workspace"
	AuditOperationOAuthLogin                     AuditOperation = "oauth.login"
	AuditOperationOAuthLoginFailure              AuditOperation = "oauth.login_failure"
	AuditOperationOAuthSignup                    AuditOperation = "oauth.signup"
	AuditOperationVariablesCreate                AuditOperation = "variables.create"
	AuditOperationVariablesDelete                AuditOperation = "variables.delete"
	AuditOperationVariablesUpdate                AuditOperation = "variables.update"
	AuditOperationFlowsCreate                    AuditOperation = "flows.create"
	AuditOperationFlowsUpdate                    AuditOperation = "flows.update"
	AuditOperationFlowsDelete                    AuditOperation = "flows.delete"
	AuditOperationFlowsArchive                   AuditOperation = "flows.archive"
	AuditOperationAppsCreate                     AuditOperation = "apps.create"
	AuditOperationAppsUpdate                     AuditOperation = "apps.update"
	AuditOperationAppsDelete                     AuditOperation = "apps.delete"
	AuditOperationFolderCreate                   AuditOperation = "folder.create"
	AuditOperationFolderUpdate                   AuditOperation = "folder.update"
	AuditOperationFolderDelete                   AuditOperation = "folder.delete"
	AuditOperationFolderAddOwner                 AuditOperation = "folder.add_owner"
	AuditOperationFolderRemoveOwner              AuditOperation = "folder.remove_owner"
	AuditOperationGroupCreate                    AuditOperation = "group.create"
	AuditOperationGroupDelete                    AuditOperation = "group.delete"
	AuditOperationGroupEdit                      AuditOperation = "group.edit"
	AuditOperationGroupAddUser                   AuditOperation = "group.adduser"
	AuditOperationGroupRemoveUser                AuditOperation = "group.removeuser"
	AuditOperationIGroupCreate                   AuditOperation = "igroup.create"
	AuditOperationIGroupDelete                   AuditOperation = "igroup.delete"
	AuditOperationIGroupAddUser                  AuditOperation = "igroup.adduser"
	AuditOperationIGroupRemoveUser               AuditOperation = "igroup.removeuser"
	AuditOperationVariablesDecryptSecret         AuditOperation = "variables.decrypt_secret"
	AuditOperationWorkspacesEditCommandScript    AuditOperation = "workspaces.edit_command_script"
	AuditOperationWorkspacesEditDeployTo         AuditOperation = "workspaces.edit_deploy_to"
	AuditOperationWorkspacesEditAutoInviteDomain AuditOperation = "workspaces.edit_auto_invite_domain"
	AuditOperationWorkspacesEditWebhook          AuditOperation = "workspaces.edit_webhook"
	AuditOperationWorkspacesEditCopilotConfig    AuditOperation = "workspaces.edit_copilot_config"
	AuditOperationWorkspacesEditErrorHandler     AuditOperation = "workspaces.edit_error_handler"
	AuditOperationWorkspacesCreate               AuditOperation = "workspaces.create"
	AuditOperationWorkspacesUpdate               AuditOperation = "workspaces.update"
	AuditOperationWorkspacesArchive              AuditOperation = "workspaces.archive"
	AuditOperationWorkspacesUnarchive            AuditOperation = "workspaces.unarchive"
	AuditOperationWorkspacesDelete               AuditOperation = "workspaces.delete"
)

var auditOperationValues = []AuditOperation{
	AuditOperationJobsRun, AuditOperationJobsRunScript, AuditOperationJobsRunPreview,
	AuditOperationJobsRunFlow, AuditOperationJobsRunFlowPreview, AuditOperationJobsRunScriptHub,
	AuditOperationJobsRunDependencies, AuditOperationJobsRunIdentity, AuditOperationJobsRunNoop,
	AuditOperationJobsFlowDependencies, AuditOperationJobs, AuditOperationJobsCancel,
	AuditOperationJobsForceCancel, AuditOperationJobsDisapproval, AuditOperationJobsDelete,
	AuditOperationAccountDelete, AuditOperationAIRequest, AuditOperationResourcesCreate,
	AuditOperationResourcesUpdate, AuditOperationResourcesDelete, AuditOperationResourceTypesCreate,
	AuditOperationResourceTypesUpdate, AuditOperationResourceTypesDelete, AuditOperationScheduleCreate,
	AuditOperationScheduleSetEnabled, AuditOperationScheduleEdit, AuditOperationScheduleDelete,
	AuditOperationScriptsCreate, AuditOperationScriptsUpdate, AuditOperationScriptsArchive,
	AuditOperationScriptsDelete, AuditOperationUsersCreate, AuditOperationUsersDelete,
	AuditOperationUsersUpdate, AuditOperationUsersLogin, AuditOperationUsersLoginFailure,
	AuditOperationUsersLogout, AuditOperationUsersAcceptInvite, AuditOperationUsersDeclineInvite,
	AuditOperationUsersTokenCreate, AuditOperationUsersTokenDelete, AuditOperationUsersAddToWorkspace,
	AuditOperationUsersAddGlobal, AuditOperationUsersSetPassword, AuditOperationUsersImpersonate,
	AuditOperationUsersLeaveWorkspace, AuditOperationOAuthLogin, AuditOperationOAuthLoginFailure,
	AuditOperationOAuthSignup, AuditOperationVariablesCreate, AuditOperationVariablesDelete,
	AuditOperationVariablesUpdate, AuditOperationFlowsCreate, AuditOperationFlowsUpdate,
	AuditOperationFlowsDelete, AuditOperationFlowsArchive, AuditOperationAppsCreate,
	AuditOperationAppsUpdate, AuditOperationAppsDelete, AuditOperationFolderCreate,
	AuditOperationFolderUpdate, AuditOperationFolderDelete, AuditOperationFolderAddOwner,
	AuditOperationFolderRemoveOwner, AuditOperationGroupCreate, AuditOperationGroupDelete,
	AuditOperationGroupEdit, AuditOperationGroupAddUser, AuditOperationGroupRemoveUser,
	AuditOperationIGroupCreate, AuditOperationIGroupDelete, AuditOperationIGroupAddUser,
	AuditOperationIGroupRemoveUser, AuditOperationVariablesDecryptSecret,
	AuditOperationWorkspacesEditCommandScript, AuditOperationWorkspacesEditDeployTo,
	AuditOperationWorkspacesEditAutoInviteDomain, AuditOperationWorkspacesEditWebhook,
	AuditOperationWorkspacesEditCopilotConfig, AuditOperationWorkspacesEditErrorHandler,
	AuditOperationWorkspacesCreate, AuditOperationWorkspacesUpdate, AuditOperationWorkspacesArchive,
	AuditOperationWorkspacesUnarchive, AuditOperationWorkspacesDelete,
}

func AuditOperationValues() []AuditOperation { return slices.Clone(auditOperationValues) }
func ParseAuditOperation(s string) (AuditOperation, error) {
	return parseEnum("AuditOperation", auditOperationValues, s)
}
func (v AuditOperation) String() string { return string(v) }
func (v *AuditOperation) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "AuditOperation", auditOperationValues, b)
}

// CaptureTriggerKind is the trigger a captured payload came from.
type CaptureTriggerKind string

const (
	CaptureTriggerWebhook   CaptureTriggerKind = "webhook"
	CaptureTriggerHTTP      CaptureTriggerKind = "http"
	CaptureTriggerWebsocket CaptureTriggerKind = "websocket"
	CaptureTriggerKafka     CaptureTriggerKind = "kafka"
	CaptureTriggerEmail     CaptureTriggerKind = "email"
	CaptureTriggerNats      CaptureTriggerKind = "nats"
	CaptureTriggerPostgres  CaptureTriggerKind = "postgres"
	CaptureTriggerSqs       CaptureTriggerKind = "sqs"
	CaptureTriggerMqtt      CaptureTriggerKind = "mqtt"
)

var captureTriggerKindValues = []CaptureTriggerKind{
	CaptureTriggerWebhook, CaptureTriggerHTTP, CaptureTriggerWebsocket, CaptureTriggerKafka,
	CaptureTriggerEmail, CaptureTriggerNats, CaptureTriggerPostgres, CaptureTriggerSqs,
	CaptureTriggerMqtt,
}

func CaptureTriggerKindValues() []CaptureTriggerKind {
	return slices.Clone(captureTriggerKindValues)
}
func ParseCaptureTriggerKind(s string) (CaptureTriggerKind, error) {
	return parseEnum("CaptureTriggerKind", captureTriggerKindValues, s)
}
func (v CaptureTriggerKind) String() string { return string(v) }
func (v *CaptureTriggerKind) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "CaptureTriggerKind", captureTriggerKindValues, b)
}

// JobKind is the kind of a queued or completed job.
type JobKind string

const (
	JobKindScript             JobKind = "script"
	JobKindPreview            JobKind = "preview"
	JobKindDependencies       JobKind = "dependencies"
	JobKindFlow               JobKind = "flow"
	JobKindFlowDependencies   JobKind = "flowdependencies"
	JobKindAppDependencies    JobKind = "appdependencies"
	JobKindFlowPreview        JobKind = "flowpreview"
	JobKindScriptHub          JobKind = "script_hub"
	JobKindIdentity           JobKind = "identity"
	JobKindDeploymentCallback JobKind = "deploymentcallback"
	JobKindSingleScriptFlow   JobKind = "singlescriptflow"
	JobKindFlowScript         JobKind = "flowscript"
	JobKindFlowNode           JobKind = "flownode"
	JobKindAppScript          JobKind = "appscript"
)

var jobKindValues = []JobKind{
	JobKindScript, JobKindPreview, JobKindDependencies, JobKindFlow, JobKindFlowDependencies,
	JobKindAppDependencies, JobKindFlowPreview, JobKindScriptHub, JobKindIdentity,
	JobKindDeploymentCallback, JobKindSingleScriptFlow, JobKindFlowScript, JobKindFlowNode,
	JobKindAppScript,
}

func JobKindValues() []JobKind { return slices.Clone(jobKindValues) }
func ParseJobKind(s string) (JobKind, error) {
	return parseEnum("JobKind", jobKindValues, s)
}
func (v JobKind) String() string { return string(v) }
func (v *JobKind) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "JobKind", jobKindValues, b)
}

// HTTPMethod is the method an HTTP trigger route answers to.
type HTTPMethod string

const (
	HTTPMethodGet    HTTPMethod = "get"
	HTTPMethodPost   HTTPMethod = "post"
	HTTPMethodPut    HTTPMethod = "put"
	HTTPMethodDelete HTTPMethod = "delete"
	HTTPMethodPatch  HTTPMethod = "patch"
)

var httpMethodValues = []HTTPMethod{
	HTTPMethodGet, HTTPMethodPost, HTTPMethodPut, HTTPMethodDelete, HTTPMethodPatch,
}

func HTTPMethodValues() []HTTPMethod { return slices.Clone(httpMethodValues) }
func ParseHTTPMethod(s string) (HTTPMethod, error) {
	return parseEnum("HTTPMethod", httpMethodValues, s)
}
func (v HTTPMethod) String() string { return string(v) }
func (v *HTTPMethod) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "HTTPMethod", httpMethodValues, b)
}

// FlowStatusModuleType is the execution state of one flow step.
type FlowStatusModuleType string

const (
	FlowStatusWaitingForPriorSteps FlowStatusModuleType = "WaitingForPriorSteps"
	FlowStatusWaitingForEvents     FlowStatusModuleType = "WaitingForEvents"
	FlowStatusWaitingForExecutor   FlowStatusModuleType = "WaitingForExecutor"
	FlowStatusInProgress           FlowStatusModuleType = "InProgress"
	FlowStatusSuccess              FlowStatusModuleType = "Success"
	FlowStatusFailure              FlowStatusModuleType = "Failure"
)

var flowStatusModuleTypeValues = []FlowStatusModuleType{
	FlowStatusWaitingForPriorSteps, FlowStatusWaitingForEvents, FlowStatusWaitingForExecutor,
	FlowStatusInProgress, FlowStatusSuccess, FlowStatusFailure,
}

func FlowStatusModuleTypeValues() []FlowStatusModuleType {
	return slices.Clone(flowStatusModuleTypeValues)
}
func ParseFlowStatusModuleType(s string) (FlowStatusModuleType, error) {
	return parseEnum("FlowStatusModuleType", flowStatusModuleTypeValues, s)
}
func (v FlowStatusModuleType) String() string { return string(v) }
func (v *FlowStatusModuleType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "FlowStatusModuleType", flowStatusModuleTypeValues, b)
}

// BranchChosenType tells whether a branchone step took a branch or the default.
type BranchChosenType string

const (
	BranchChosenBranch  BranchChosenType = "branch"
	BranchChosenDefault BranchChosenType = "default"
)

var branchChosenTypeValues = []BranchChosenType{BranchChosenBranch, BranchChosenDefault}

func BranchChosenTypeValues() []BranchChosenType { return slices.Clone(branchChosenTypeValues) }
func ParseBranchChosenType(s string) (BranchChosenType, error) {
	return parseEnum("BranchChosenType", branchChosenTypeValues, s)
}
func (v BranchChosenType) String() string { return string(v) }
func (v *BranchChosenType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "BranchChosenType", branchChosenTypeValues, b)
}

// GitSyncObjectType is an object class that git sync can include or exclude.
type GitSyncObjectType string

const (
	GitSyncScript       GitSyncObjectType = "script"
	GitSyncFlow         GitSyncObjectType = "flow"
	GitSyncApp          GitSyncObjectType = "app"
	GitSyncFolder       GitSyncObjectType = "folder"
	GitSyncResource     GitSyncObjectType = "resource"
	GitSyncVariable     GitSyncObjectType = "variable"
	GitSyncSecret       GitSyncObjectType = "secret"
	GitSyncResourceType GitSyncObjectType = "resourcetype"
	GitSyncSchedule     GitSyncObjectType = "schedule"
	GitSyncUser         GitSyncObjectType = "user"
	GitSyncGroup        GitSyncObjectType = "group"
)

var gitSyncObjectTypeValues = []GitSyncObjectType{
	GitSyncScript, GitSyncFlow, GitSyncApp, GitSyncFolder, GitSyncResource, GitSyncVariable,
	GitSyncSecret, GitSyncResourceType, GitSyncSchedule, GitSyncUser, GitSyncGroup,
}

func GitSyncObjectTypeValues() []GitSyncObjectType { return slices.Clone(gitSyncObjectTypeValues) }
func ParseGitSyncObjectType(s string) (GitSyncObjectType, error) {
	return parseEnum("GitSyncObjectType", gitSyncObjectTypeValues, s)
}
func (v GitSyncObjectType) String() string { return string(v) }
func (v *GitSyncObjectType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "GitSyncObjectType", gitSyncObjectTypeValues, b)
}

// DeployUIObjectType is an object class shown in the deploy-to-workspace UI.
type DeployUIObjectType string

const (
	DeployUIScript   DeployUIObjectType = "script"
	DeployUIFlow     DeployUIObjectType = "flow"
	DeployUIApp      DeployUIObjectType = "app"
	DeployUIResource DeployUIObjectType = "resource"
	DeployUIVariable DeployUIObjectType = "variable"
	DeployUISecret   DeployUIObjectType = "secret"
	DeployUITrigger  DeployUIObjectType = "trigger"
)

var deployUIObjectTypeValues = []DeployUIObjectType{
	DeployUIScript, DeployUIFlow, DeployUIApp, DeployUIResource, DeployUIVariable,
	DeployUISecret, DeployUITrigger,
}

func DeployUIObjectTypeValues() []DeployUIObjectType {
	return slices.Clone(deployUIObjectTypeValues)
}
func ParseDeployUIObjectType(s string) (DeployUIObjectType, error) {
	return parseEnum("DeployUIObjectType", deployUIObjectTypeValues, s)
}
func (v DeployUIObjectType) String() string { return string(v) }
func (v *DeployUIObjectType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "DeployUIObjectType", deployUIObjectTypeValues, b)
}

// LoginType is how a global user authenticates.
type LoginType string

const (
	LoginTypePassword LoginType = "password"
	LoginTypeGithub   LoginType = "github"
)

var loginTypeValues = []LoginType{LoginTypePassword, LoginTypeGithub}

func LoginTypeValues() []LoginType { return slices.Clone(loginTypeValues) }
func ParseLoginType(s string) (LoginType, error) {
	return parseEnum("LoginType", loginTypeValues, s)
}
func (v LoginType) String() string { return string(v) }
func (v *LoginType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "LoginType", loginTypeValues, b)
}

// LargeFileStorageType is the object store backing workspace large files.
type LargeFileStorageType string

const (
	LargeFileStorageS3                    LargeFileStorageType = "S3Storage"
	LargeFileStorageAzureBlob             LargeFileStorageType = "AzureBlobStorage"
	LargeFileStorageAzureWorkloadIdentity LargeFileStorageType = "AzureWorkloadIdentity"
	LargeFileStorageS3AwsOidc             LargeFileStorageType = "S3AwsOidc"
)

var largeFileStorageTypeValues = []LargeFileStorageType{
	LargeFileStorageS3, LargeFileStorageAzureBlob, LargeFileStorageAzureWorkloadIdentity,
	LargeFileStorageS3AwsOidc,
}

func LargeFileStorageTypeValues() []LargeFileStorageType {
	return slices.Clone(largeFileStorageTypeValues)
}
func ParseLargeFileStorageType(s string) (LargeFileStorageType, error) {
	return parseEnum("LargeFileStorageType", largeFileStorageTypeValues, s)
}
func (v LargeFileStorageType) String() string { return string(v) }
func (v *LargeFileStorageType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "LargeFileStorageType", largeFileStorageTypeValues, b)
}

// MqttClientVersion is the MQTT protocol version a trigger connects with.
type MqttClientVersion string

const (
	MqttV3 MqttClientVersion = "v3"
	MqttV5 MqttClientVersion = "v5"
)

var mqttClientVersionValues = []MqttClientVersion{MqttV3, MqttV5}

func MqttClientVersionValues() []MqttClientVersion { return slices.Clone(mqttClientVersionValues) }
func ParseMqttClientVersion(s string) (MqttClientVersion, error) {
	return parseEnum("MqttClientVersion", mqttClientVersionValues, s)
}
func (v MqttClientVersion) String() string { return string(v) }
func (v *MqttClientVersion) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "MqttClientVersion", mqttClientVersionValues, b)
}

// MqttQoS is the delivery guarantee of an MQTT subscription.
type MqttQoS string

const (
	MqttQoS0 MqttQoS = "qos0"
	MqttQoS1 MqttQoS = "qos1"
	MqttQoS2 MqttQoS = "qos2"
)

var mqttQoSValues = []MqttQoS{MqttQoS0, MqttQoS1, MqttQoS2}

func MqttQoSValues() []MqttQoS { return slices.Clone(mqttQoSValues) }
func ParseMqttQoS(s string) (MqttQoS, error) {
	return parseEnum("MqttQoS", mqttQoSValues, s)
}
func (v MqttQoS) String() string { return string(v) }
func (v *MqttQoS) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "MqttQoS", mqttQoSValues, b)
}

// ScriptKind is the role a script plays.
type ScriptKind string

const (
	ScriptKindScript       ScriptKind = "script"
	ScriptKindFailure      ScriptKind = "failure"
	ScriptKindTrigger      ScriptKind = "trigger"
	ScriptKindCommand      ScriptKind = "command"
	ScriptKindApproval     ScriptKind = "approval"
	ScriptKindPreprocessor ScriptKind = "preprocessor"
)

var scriptKindValues = []ScriptKind{
	ScriptKindScript, ScriptKindFailure, ScriptKindTrigger, ScriptKindCommand,
	ScriptKindApproval, ScriptKindPreprocessor,
}

func ScriptKindValues() []ScriptKind { return slices.Clone(scriptKindValues) }
func ParseScriptKind(s string) (ScriptKind, error) {
	return parseEnum("ScriptKind", scriptKindValues, s)
}
func (v ScriptKind) String() string { return string(v) }
func (v *ScriptKind) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "ScriptKind", scriptKindValues, b)
}

// ScriptLang is the language a script or inline flow step is written in.
type ScriptLang string

const (
	ScriptLangPython3    ScriptLang = "python3"
	ScriptLangDeno       ScriptLang = "deno"
	ScriptLangGo         ScriptLang = "go"
	ScriptLangBash       ScriptLang = "bash"
	ScriptLangPowershell ScriptLang = "powershell"
	ScriptLangPostgresql ScriptLang = "postgresql"
	ScriptLangMysql      ScriptLang = "mysql"
	ScriptLangBigquery   ScriptLang = "bigquery"
	ScriptLangSnowflake  ScriptLang = "snowflake"
	ScriptLangMssql      ScriptLang = "mssql"
	ScriptLangOracledb   ScriptLang = "oracledb"
	ScriptLangGraphql    ScriptLang = "graphql"
	ScriptLangNativets   ScriptLang = "nativets"
	ScriptLangBun        ScriptLang = "bun"
	ScriptLangPhp        ScriptLang = "php"
	ScriptLangRust       ScriptLang = "rust"
	ScriptLangAnsible    ScriptLang = "ansible"
	ScriptLangCsharp     ScriptLang = "csharp"
	ScriptLangNu         ScriptLang = "nu"
)

var scriptLangValues = []ScriptLang{
	ScriptLangPython3, ScriptLangDeno, ScriptLangGo, ScriptLangBash, ScriptLangPowershell,
	ScriptLangPostgresql, ScriptLangMysql, ScriptLangBigquery, ScriptLangSnowflake,
	ScriptLangMssql, ScriptLangOracledb, ScriptLangGraphql, ScriptLangNativets, ScriptLangBun,
	ScriptLangPhp, ScriptLangRust, ScriptLangAnsible, ScriptLangCsharp, ScriptLangNu,
}

func ScriptLangValues() []ScriptLang { return slices.Clone(scriptLangValues) }
func ParseScriptLang(s string) (ScriptLang, error) {
	return parseEnum("ScriptLang", scriptLangValues, s)
}
func (v ScriptLang) String() string { return string(v) }
func (v *ScriptLang) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "ScriptLang", scriptLangValues, b)
}

// PreviewKind selects what a preview job runs.
type PreviewKind string

const (
	PreviewKindCode     PreviewKind = "code"
	PreviewKindIdentity PreviewKind = "identity"
	PreviewKindHTTP     PreviewKind = "http"
)

var previewKindValues = []PreviewKind{PreviewKindCode, PreviewKindIdentity, PreviewKindHTTP}

func PreviewKindValues() []PreviewKind { return slices.Clone(previewKindValues) }
func ParsePreviewKind(s string) (PreviewKind, error) {
	return parseEnum("PreviewKind", previewKindValues, s)
}
func (v PreviewKind) String() string { return string(v) }
func (v *PreviewKind) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "PreviewKind", previewKindValues, b)
}

// RunnableType identifies what an input history entry belongs to.
type RunnableType string

const (
	RunnableScriptHash RunnableType = "ScriptHash"
	RunnableScriptPath RunnableType = "ScriptPath"
	RunnableFlowPath   RunnableType = "FlowPath"
)

var runnableTypeValues = []RunnableType{RunnableScriptHash, RunnableScriptPath, RunnableFlowPath}

func RunnableTypeValues() []RunnableType { return slices.Clone(runnableTypeValues) }
func ParseRunnableType(s string) (RunnableType, error) {
	return parseEnum("RunnableType", runnableTypeValues, s)
}
func (v RunnableType) String() string { return string(v) }
func (v *RunnableType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "RunnableType", runnableTypeValues, b)
}

// FilePreviewContentType is how the server rendered a file preview.
type FilePreviewContentType string

const (
	FilePreviewRawText FilePreviewContentType = "RawText"
	FilePreviewCsv     FilePreviewContentType = "Csv"
	FilePreviewParquet FilePreviewContentType = "Parquet"
	FilePreviewUnknown FilePreviewContentType = "Unknown"
)

var filePreviewContentTypeValues = []FilePreviewContentType{
	FilePreviewRawText, FilePreviewCsv, FilePreviewParquet, FilePreviewUnknown,
}

func FilePreviewContentTypeValues() []FilePreviewContentType {
	return slices.Clone(filePreviewContentTypeValues)
}
func ParseFilePreviewContentType(s string) (FilePreviewContentType, error) {
	return parseEnum("FilePreviewContentType", filePreviewContentTypeValues, s)
}
func (v FilePreviewContentType) String() string { return string(v) }
func (v *FilePreviewContentType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "FilePreviewContentType", filePreviewContentTypeValues, b)
}

// MainArgSignatureType tells whether a script's main signature parsed.
type MainArgSignatureType string

const (
	MainArgSignatureValid   MainArgSignatureType = "Valid"
	MainArgSignatureInvalid MainArgSignatureType = "Invalid"
)

var mainArgSignatureTypeValues = []MainArgSignatureType{MainArgSignatureValid, MainArgSignatureInvalid}

func MainArgSignatureTypeValues() []MainArgSignatureType {
	return slices.Clone(mainArgSignatureTypeValues)
}
func ParseMainArgSignatureType(s string) (MainArgSignatureType, error) {
	return parseEnum("MainArgSignatureType", mainArgSignatureTypeValues, s)
}
func (v MainArgSignatureType) String() string { return string(v) }
func (v *MainArgSignatureType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "MainArgSignatureType", mainArgSignatureTypeValues, b)
}

// AclKind is the object class an ACL path refers to. Groups use the legacy
// "group_" literal.
type AclKind string

const (
	AclKindScript   AclKind = "script"
	AclKindGroup    AclKind = "group_"
	AclKindResource AclKind = "resource"
	AclKindSchedule AclKind = "schedule"
	AclKindVariable AclKind = "variable"
	AclKindFlow     AclKind = "flow"
	AclKindFolder   AclKind = "folder"
	AclKindApp      AclKind = "app"
	AclKindRawApp   AclKind = "raw_app"
)

var aclKindValues = []AclKind{
	AclKindScript, AclKindGroup, AclKindResource, AclKindSchedule, AclKindVariable,
	AclKindFlow, AclKindFolder, AclKindApp, AclKindRawApp,
}

func AclKindValues() []AclKind { return slices.Clone(aclKindValues) }
func ParseAclKind(s string) (AclKind, error) {
	return parseEnum("AclKind", aclKindValues, s)
}
func (v AclKind) String() string { return string(v) }
func (v *AclKind) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "AclKind", aclKindValues, b)
}

// DraftKind is the object class a draft belongs to.
type DraftKind string

const (
	DraftKindScript DraftKind = "script"
	DraftKindFlow   DraftKind = "flow"
	DraftKindApp    DraftKind = "app"
)

var draftKindValues = []DraftKind{DraftKindScript, DraftKindFlow, DraftKindApp}

func DraftKindValues() []DraftKind { return slices.Clone(draftKindValues) }
func ParseDraftKind(s string) (DraftKind, error) {
	return parseEnum("DraftKind", draftKindValues, s)
}
func (v DraftKind) String() string { return string(v) }
func (v *DraftKind) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "DraftKind", draftKindValues, b)
}

// TriggerKind names a trigger family. The literal is the API path segment.
type TriggerKind string

const (
	TriggerKindHTTP      TriggerKind = "http_triggers"
	TriggerKindWebsocket TriggerKind = "websocket_triggers"
	TriggerKindKafka     TriggerKind = "kafka_triggers"
	TriggerKindNats      TriggerKind = "nats_triggers"
	TriggerKindMqtt      TriggerKind = "mqtt_triggers"
	TriggerKindSqs       TriggerKind = "sqs_triggers"
	TriggerKindPostgres  TriggerKind = "postgres_triggers"
)

var triggerKindValues = []TriggerKind{
	TriggerKindHTTP, TriggerKindWebsocket, TriggerKindKafka, TriggerKindNats,
	TriggerKindMqtt, TriggerKindSqs, TriggerKindPostgres,
}

func TriggerKindValues() []TriggerKind { return slices.Clone(triggerKindValues) }
func ParseTriggerKind(s string) (TriggerKind, error) {
	return parseEnum("TriggerKind", triggerKindValues, s)
}
func (v TriggerKind) String() string { return string(v) }
func (v *TriggerKind) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "TriggerKind", triggerKindValues, b)
}

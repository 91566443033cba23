package models

import "time"

// User is a member of a workspace.
type User struct {
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	IsAdmin       bool      `json:"is_admin"`
	Name          *string   `json:"name,omitempty"`
	IsSuperAdmin  bool      `json:"is_super_admin"`
	CreatedAt     time.Time `json:"created_at"`
	Operator      bool      `json:"operator"`
	Disabled      bool      `json:"disabled"`
	Groups        []string  `json:"groups,omitempty"`
	Folders       []string  `json:"folders"`
	FoldersRead   []string  `json:"folders_read,omitempty"`
	FoldersOwners []string  `json:"folders_owners"`
	AddedVia      any       `json:"added_via,omitempty"`
}

// GlobalUserInfo is an instance-level user account.
type GlobalUserInfo struct {
	Email        string    `json:"email"`
	LoginType    LoginType `json:"login_type"`
	SuperAdmin   bool      `json:"super_admin"`
	Devops       *bool     `json:"devops,omitempty"`
	Verified     bool      `json:"verified"`
	Name         *string   `json:"name,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Username     *string   `json:"username,omitempty"`
	OperatorOnly *bool     `json:"operator_only,omitempty"`
}

// EditWorkspaceUser changes a member's role in a workspace.
type EditWorkspaceUser struct {
	IsAdmin  *bool `json:"is_admin,omitempty"`
	Operator *bool `json:"operator,omitempty"`
	Disabled *bool `json:"disabled,omitempty"`
}

// Login is the password login body.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewToken requests a personal API token.
type NewToken struct {
	Label       *string    `json:"label,omitempty"`
	Expiration  *time.Time `json:"expiration,omitempty"`
	Scopes      []string   `json:"scopes,omitempty"`
	WorkspaceID *string    `json:"workspace_id,omitempty"`
}

// NewTokenImpersonate requests a token that acts as another user.
type NewTokenImpersonate struct {
	Label            *string    `json:"label,omitempty"`
	Expiration       *time.Time `json:"expiration,omitempty"`
	ImpersonateEmail string     `json:"impersonate_email"`
	WorkspaceID      *string    `json:"workspace_id,omitempty"`
}

// TruncatedToken is a token listing entry; only its prefix is returned.
type TruncatedToken struct {
	Label       *string    `json:"label,omitempty"`
	Expiration  *time.Time `json:"expiration,omitempty"`
	TokenPrefix string     `json:"token_prefix"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUsedAt  time.Time  `json:"last_used_at"`
	Scopes      []string   `json:"scopes,omitempty"`
	Email       *string    `json:"email,omitempty"`
}

// UserUsage is the execution time a user consumed.
type UserUsage struct {
	Email      *string  `json:"email,omitempty"`
	Executions *float64 `json:"executions,omitempty"`
}

// WorkspaceInvite is a pending invitation to a workspace.
type WorkspaceInvite struct {
	WorkspaceID string `json:"workspace_id"`
	Email       string `json:"email"`
	IsAdmin     bool   `json:"is_admin"`
	Operator    bool   `json:"operator"`
}

// InviteUser is the body of workspaces/invite_user.
type InviteUser struct {
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	Operator bool   `json:"operator"`
}

// AddUser adds an existing instance user to a workspace directly.
type AddUser struct {
	Email    string  `json:"email"`
	IsAdmin  bool    `json:"is_admin"`
	Username *string `json:"username,omitempty"`
	Operator bool    `json:"operator"`
}

// DeleteInvite is the body of workspaces/delete_invite.
type DeleteInvite struct {
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	Operator bool   `json:"operator"`
}

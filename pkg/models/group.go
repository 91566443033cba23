package models

// Group is a workspace group of users.
type Group struct {
	Name       string     `json:"name"`
	Summary    *string    `json:"summary,omitempty"`
	Members    []string   `json:"members,omitempty"`
	ExtraPerms ExtraPerms `json:"extra_perms,omitempty"`
}

// InstanceGroup is an instance-wide group, usually synced from SCIM.
type InstanceGroup struct {
	Name    string   `json:"name"`
	Summary *string  `json:"summary,omitempty"`
	Emails  []string `json:"emails,omitempty"`
}

type CreateGroup struct {
	Name    string  `json:"name"`
	Summary *string `json:"summary,omitempty"`
}

type EditGroup struct {
	Summary *string `json:"summary,omitempty"`
}

// GroupMember names a user added to or removed from a group.
type GroupMember struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Folder groups paths under f/<name> and carries its own owners.
type Folder struct {
	Name        string     `json:"name"`
	Owners      []string   `json:"owners"`
	ExtraPerms  ExtraPerms `json:"extra_perms"`
	Summary     *string    `json:"summary,omitempty"`
	CreatedBy   *string    `json:"created_by,omitempty"`
	EditedAt    *string    `json:"edited_at,omitempty"`
	DisplayName *string    `json:"display_name,omitempty"`
}

type CreateFolder struct {
	Name       string     `json:"name"`
	Summary    *string    `json:"summary,omitempty"`
	Owners     []string   `json:"owners,omitempty"`
	ExtraPerms ExtraPerms `json:"extra_perms,omitempty"`
}

type UpdateFolder struct {
	Summary    *string    `json:"summary,omitempty"`
	Owners     []string   `json:"owners,omitempty"`
	ExtraPerms ExtraPerms `json:"extra_perms,omitempty"`
}

// FolderOwner adds or removes an owner of a folder.
type FolderOwner struct {
	Owner string `json:"owner"`
}

// FolderUsage counts the objects stored under a folder.
type FolderUsage struct {
	Scripts   int64 `json:"scripts"`
	Flows     int64 `json:"flows"`
	Apps      int64 `json:"apps"`
	Resources int64 `json:"resources"`
	Variables int64 `json:"variables"`
	Schedules int64 `json:"schedules"`
}

// ACL maps an owner ("u/<user>" or "g/<group>") to write permission.
type ACL map[string]bool

// GranularAclRequest grants or removes one owner's access.
type GranularAclRequest struct {
	Owner string `json:"owner"`
	Write *bool  `json:"write,omitempty"`
}

// WorkerConfig is the configuration of a worker group.
type WorkerConfig struct {
	Name   string `json:"name"`
	Config any    `json:"config,omitempty"`
}

// Favorite stars a runnable for the calling user.
type Favorite struct {
	FavoriteKind string `json:"favorite_kind"`
	Path         string `json:"path"`
}

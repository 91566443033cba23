package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// ListInstanceGroups lists instance-wide groups.
func (c *Client) ListInstanceGroups(ctx context.Context) ([]models.InstanceGroup, error) {
	return doJSON[[]models.InstanceGroup](ctx, c, request{method: http.MethodGet, path: "/groups/list", want: http.StatusOK})
}

// GetInstanceGroup fetches an instance group.
func (c *Client) GetInstanceGroup(ctx context.Context, name string) (models.InstanceGroup, error) {
	return doJSON[models.InstanceGroup](ctx, c, request{method: http.MethodGet, path: pathf("/groups/get/%s", name), want: http.StatusOK})
}

// CreateInstanceGroup creates an instance group.
func (c *Client) CreateInstanceGroup(ctx context.Context, body models.CreateGroup) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: "/groups/create", body: body, want: http.StatusOK})
}

// UpdateInstanceGroup edits the summary of an instance group.
func (c *Client) UpdateInstanceGroup(ctx context.Context, name string, newSummary string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: pathf("/groups/update/%s", name), body: map[string]string{"new_summary": newSummary}, want: http.StatusOK})
}

// DeleteInstanceGroup deletes an instance group.
func (c *Client) DeleteInstanceGroup(ctx context.Context, name string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: pathf("/groups/delete/%s", name), want: http.StatusOK})
}

// AddUserToInstanceGroup adds a user to an instance group by email.
func (c *Client) AddUserToInstanceGroup(ctx context.Context, name, email string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: pathf("/groups/adduser/%s", name), body: map[string]string{"email": email}, want: http.StatusOK})
}

// RemoveUserFromInstanceGroup removes a user from an instance group.
func (c *Client) RemoveUserFromInstanceGroup(ctx context.Context, name, email string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: pathf("/groups/removeuser/%s", name), body: map[string]string{"email": email}, want: http.StatusOK})
}

// ListGroups lists the groups of a workspace.
func (c *Client) ListGroups(ctx context.Context, workspace string, p Pagination) ([]models.Group, error) {
	q := url.Values{}
	p.apply(q)
	return doJSON[[]models.Group](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/groups/list"), query: q, want: http.StatusOK})
}

// ListGroupNames returns group names only.
func (c *Client) ListGroupNames(ctx context.Context, workspace string, onlyMemberOf *bool) ([]string, error) {
	q := url.Values{}
	addParam(q, "only_member_of", onlyMemberOf)
	return doJSON[[]string](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/groups/listnames"), query: q, want: http.StatusOK})
}

// CreateGroup creates a group.
func (c *Client) CreateGroup(ctx context.Context, workspace string, body models.CreateGroup) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/groups/create"), body: body, want: http.StatusOK})
}

// UpdateGroup edits a group's summary.
func (c *Client) UpdateGroup(ctx context.Context, workspace, name string, body models.EditGroup) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/groups/update/%s", name), body: body, want: http.StatusOK})
}

// DeleteGroup deletes a group.
func (c *Client) DeleteGroup(ctx context.Context, workspace, name string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/groups/delete/%s", name), want: http.StatusOK})
}

// GetGroup fetches a group with its members.
func (c *Client) GetGroup(ctx context.Context, workspace, name string) (models.Group, error) {
	return doJSON[models.Group](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/groups/get/%s", name), want: http.StatusOK})
}

// AddUserToGroup adds a user to a group.
func (c *Client) AddUserToGroup(ctx context.Context, workspace, name string, body models.GroupMember) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/groups/adduser/%s", name), body: body, want: http.StatusOK})
}

// RemoveUserToGroup removes a user from a group.
func (c *Client) RemoveUserToGroup(ctx context.Context, workspace, name string, body models.GroupMember) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/groups/removeuser/%s", name), body: body, want: http.StatusOK})
}

// ListFolders lists the folders of a workspace.
func (c *Client) ListFolders(ctx context.Context, workspace string, p Pagination) ([]models.Folder, error) {
	q := url.Values{}
	p.apply(q)
	return doJSON[[]models.Folder](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/folders/list"), query: q, want: http.StatusOK})
}

// ListFolderNames returns folder names only.
func (c *Client) ListFolderNames(ctx context.Context, workspace string, onlyMemberOf *bool) ([]string, error) {
	q := url.Values{}
	addParam(q, "only_member_of", onlyMemberOf)
	return doJSON[[]string](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/folders/listnames"), query: q, want: http.StatusOK})
}

// CreateFolder creates a folder.
func (c *Client) CreateFolder(ctx context.Context, workspace string, body models.CreateFolder) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/folders/create"), body: body, want: http.StatusOK})
}

// UpdateFolder edits a folder's owners and permissions.
func (c *Client) UpdateFolder(ctx context.Context, workspace, name string, body models.UpdateFolder) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/folders/update/%s", name), body: body, want: http.StatusOK})
}

// DeleteFolder deletes a folder.
func (c *Client) DeleteFolder(ctx context.Context, workspace, name string) (string, error) {
	return c.doText(ctx, request{method: http.MethodDelete, path: wpath(workspace, "/folders/delete/%s", name), want: http.StatusOK})
}

// GetFolder fetches a folder.
func (c *Client) GetFolder(ctx context.Context, workspace, name string) (models.Folder, error) {
	return doJSON[models.Folder](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/folders/get/%s", name), want: http.StatusOK})
}

// GetFolderUsage counts the scripts, flows and apps stored in a folder.
func (c *Client) GetFolderUsage(ctx context.Context, workspace, name string) (models.FolderUsage, error) {
	return doJSON[models.FolderUsage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/folders/getusage/%s", name), want: http.StatusOK})
}

// AddOwnerToFolder grants owner rights on a folder.
func (c *Client) AddOwnerToFolder(ctx context.Context, workspace, name, owner string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/folders/addowner/%s", name), body: models.FolderOwner{Owner: owner}, want: http.StatusOK})
}

// RemoveOwnerToFolder revokes owner rights on a folder.
func (c *Client) RemoveOwnerToFolder(ctx context.Context, workspace, name, owner string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/folders/removeowner/%s", name), body: models.FolderOwner{Owner: owner}, want: http.StatusOK})
}

// GetGranularAcls returns the owners of path and whether each may write.
func (c *Client) GetGranularAcls(ctx context.Context, workspace string, kind models.AclKind, path string) (models.ACL, error) {
	return doJSON[models.ACL](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/acls/get/%s/%s", kind, path), want: http.StatusOK})
}

// AddGranularAcls grants an owner access to one object.
func (c *Client) AddGranularAcls(ctx context.Context, workspace string, kind models.AclKind, path string, body models.GranularAclRequest) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/acls/add/%s/%s", kind, path), body: body, want: http.StatusOK})
}

// RemoveGranularAcls revokes an owner's access to one object.
func (c *Client) RemoveGranularAcls(ctx context.Context, workspace string, kind models.AclKind, path, owner string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/acls/remove/%s/%s", kind, path), body: models.GranularAclRequest{Owner: owner}, want: http.StatusOK})
}

// Star adds a runnable to the caller's favorites.
func (c *Client) Star(ctx context.Context, workspace string, body models.Favorite) error {
	return c.doEmpty(ctx, request{method: http.MethodPost, path: wpath(workspace, "/favorites/star"), body: body, want: http.StatusOK})
}

// Unstar removes an object from the user's favorites.
func (c *Client) Unstar(ctx context.Context, workspace string, body models.Favorite) error {
	return c.doEmpty(ctx, request{method: http.MethodPost, path: wpath(workspace, "/favorites/unstar"), body: body, want: http.StatusOK})
}

package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// CaptureRequest sends a payload to the capture endpoint of path without
// authentication.
func (c *Client) CaptureRequest(ctx context.Context, workspace, path string, payload any) error {
	return c.doEmpty(ctx, request{method: http.MethodPost, path: wpath(workspace, "/capture_u/%s", path), body: nullIfNil(payload), want: http.StatusNoContent})
}

// CreateCapture starts listening for payloads on path.
func (c *Client) CreateCapture(ctx context.Context, workspace, path string) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodPut, path: wpath(workspace, "/capture/%s", path), want: http.StatusCreated})
}

// GetCapture returns the last payload captured on path.
func (c *Client) GetCapture(ctx context.Context, workspace, path string) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/capture/%s", path), want: http.StatusOK})
}

// InputsParams selects the runnable whose saved inputs are listed.
type InputsParams struct {
	Pagination
	RunnableID   *string
	RunnableType *models.RunnableType
}

func (p InputsParams) query() url.Values {
	q := url.Values{}
	p.apply(q)
	addParam(q, "runnable_id", p.RunnableID)
	addParam(q, "runnable_type", p.RunnableType)
	return q
}

// GetInputHistory lists the arguments of past runs of a runnable.
func (c *Client) GetInputHistory(ctx context.Context, workspace string, p InputsParams) ([]models.Input, error) {
	return doJSON[[]models.Input](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/inputs/history"), query: p.query(), want: http.StatusOK})
}

// GetArgsFromHistoryOrSavedInput returns the args of a past job or a saved
// input.
func (c *Client) GetArgsFromHistoryOrSavedInput(ctx context.Context, workspace, jobOrInputID string) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/inputs/%s/args", jobOrInputID), want: http.StatusOK})
}

// ListInputs lists saved inputs of a runnable.
func (c *Client) ListInputs(ctx context.Context, workspace string, p InputsParams) ([]models.Input, error) {
	return doJSON[[]models.Input](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/inputs/list"), query: p.query(), want: http.StatusOK})
}

// CreateInput saves a named input for a runnable.
func (c *Client) CreateInput(ctx context.Context, workspace string, body models.CreateInput, p InputsParams) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/inputs/create"), query: p.query(), body: body, want: http.StatusCreated})
}

// UpdateInput renames a saved input or changes its visibility.
func (c *Client) UpdateInput(ctx context.Context, workspace string, body models.UpdateInput) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/inputs/update"), body: body, want: http.StatusCreated})
}

// DeleteInput deletes a saved input.
func (c *Client) DeleteInput(ctx context.Context, workspace, input string) (string, error) {
	return c.doText(ctx, request{method: http.MethodPost, path: wpath(workspace, "/inputs/delete/%s", input), want: http.StatusOK})
}

// ConnectionSettings is an engine connection snippet for the workspace
// storage.
type ConnectionSettings struct {
	ConnectionSettingsStr *string        `json:"connection_settings_str,omitempty"`
	S3FsArgs              map[string]any `json:"s3fs_args,omitempty"`
	StorageOptions        map[string]any `json:"storage_options,omitempty"`
}

// DuckdbConnectionSettings builds settings from an inline S3 resource.
func (c *Client) DuckdbConnectionSettings(ctx context.Context, workspace string, s3 models.S3Resource) (ConnectionSettings, error) {
	return doJSON[ConnectionSettings](ctx, c, request{
		method: http.MethodPost,
		path:   wpath(workspace, "/job_helpers/duckdb_connection_settings"),
		body:   map[string]any{"s3_resource": s3},
		want:   http.StatusOK,
	})
}

// DuckdbConnectionSettingsV2 builds settings from a stored S3 resource, or
// from the workspace storage when path is nil.
func (c *Client) DuckdbConnectionSettingsV2(ctx context.Context, workspace string, body models.S3ResourceInfoRequest) (ConnectionSettings, error) {
	return doJSON[ConnectionSettings](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/job_helpers/v2/duckdb_connection_settings"), body: body, want: http.StatusOK})
}

// PolarsConnectionSettings returns the object storage settings for Polars.
func (c *Client) PolarsConnectionSettings(ctx context.Context, workspace string, s3 models.S3Resource) (ConnectionSettings, error) {
	return doJSON[ConnectionSettings](ctx, c, request{
		method: http.MethodPost,
		path:   wpath(workspace, "/job_helpers/polars_connection_settings"),
		body:   map[string]any{"s3_resource": s3},
		want:   http.StatusOK,
	})
}

// PolarsConnectionSettingsV2 returns the object storage settings for Polars, in the v2 layout.
func (c *Client) PolarsConnectionSettingsV2(ctx context.Context, workspace string, body models.S3ResourceInfoRequest) (ConnectionSettings, error) {
	return doJSON[ConnectionSettings](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/job_helpers/v2/polars_connection_settings"), body: body, want: http.StatusOK})
}

// S3ResourceInfo resolves a stored S3 resource, or the workspace storage
// when the path is nil.
func (c *Client) S3ResourceInfo(ctx context.Context, workspace string, body models.S3ResourceInfoRequest) (models.S3Resource, error) {
	return doJSON[models.S3Resource](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/job_helpers/v2/s3_resource_info"), body: body, want: http.StatusOK})
}

// DatasetStorageTestConnection checks that the workspace object storage is reachable.
func (c *Client) DatasetStorageTestConnection(ctx context.Context, workspace string) (any, error) {
	return doJSON[any](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/job_helpers/test_connection"), want: http.StatusOK})
}

// ListStoredFilesParams pages through workspace storage.
type ListStoredFilesParams struct {
	MaxKeys int64
	Marker  *string
	Prefix  *string
}

// ListStoredFiles lists one page of files in the workspace object storage.
func (c *Client) ListStoredFiles(ctx context.Context, workspace string, p ListStoredFilesParams) (models.StoredFiles, error) {
	q := url.Values{}
	addParam(q, "max_keys", &p.MaxKeys)
	addParam(q, "marker", p.Marker)
	addParam(q, "prefix", p.Prefix)
	return doJSON[models.StoredFiles](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/job_helpers/list_stored_files"), query: q, want: http.StatusOK})
}

// LoadFileMetadata returns size, type and modification time of a stored file.
func (c *Client) LoadFileMetadata(ctx context.Context, workspace, fileKey string) (models.WindmillFileMetadata, error) {
	q := url.Values{}
	q.Set("file_key", fileKey)
	return doJSON[models.WindmillFileMetadata](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/job_helpers/load_file_metadata"), query: q, want: http.StatusOK})
}

// LoadFilePreviewParams selects the byte range and CSV parsing of a preview.
type LoadFilePreviewParams struct {
	FileSizeInBytes *int64
	FileMimeType    *string
	CSVSeparator    *string
	CSVHasHeader    *bool
	ReadBytesFrom   *int64
	ReadBytesLength *int64
}

// LoadFilePreview reads the head of a stored file.
func (c *Client) LoadFilePreview(ctx context.Context, workspace, fileKey string, p LoadFilePreviewParams) (models.WindmillFilePreview, error) {
	q := url.Values{}
	q.Set("file_key", fileKey)
	addParam(q, "file_size_in_bytes", p.FileSizeInBytes)
	addParam(q, "file_mime_type", p.FileMimeType)
	addParam(q, "csv_separator", p.CSVSeparator)
	addParam(q, "csv_has_header", p.CSVHasHeader)
	addParam(q, "read_bytes_from", p.ReadBytesFrom)
	addParam(q, "read_bytes_length", p.ReadBytesLength)
	return doJSON[models.WindmillFilePreview](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/job_helpers/load_file_preview"), query: q, want: http.StatusOK})
}

// LoadParquetPreviewParams pages and sorts a parquet preview.
type LoadParquetPreviewParams struct {
	Offset     *int64
	Limit      *int64
	SortCol    *string
	SortDesc   *bool
	SearchCol  *string
	SearchTerm *string
}

// LoadParquetPreview reads the first rows of a stored Parquet file.
func (c *Client) LoadParquetPreview(ctx context.Context, workspace, path string, p LoadParquetPreviewParams) (json.RawMessage, error) {
	q := url.Values{}
	addParam(q, "offset", p.Offset)
	addParam(q, "limit", p.Limit)
	addParam(q, "sort_col", p.SortCol)
	addParam(q, "sort_desc", p.SortDesc)
	addParam(q, "search_col", p.SearchCol)
	addParam(q, "search_term", p.SearchTerm)
	return doJSON[json.RawMessage](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/job_helpers/load_parquet_preview/%s", path), query: q, want: http.StatusOK})
}

// DeleteS3File deletes a file from the workspace object storage.
func (c *Client) DeleteS3File(ctx context.Context, workspace, fileKey string) (any, error) {
	q := url.Values{}
	q.Set("file_key", fileKey)
	return doJSON[any](ctx, c, request{method: http.MethodDelete, path: wpath(workspace, "/job_helpers/delete_s3_file"), query: q, want: http.StatusOK})
}

// MoveS3File renames a file in the workspace object storage.
func (c *Client) MoveS3File(ctx context.Context, workspace, srcFileKey, destFileKey string) (any, error) {
	q := url.Values{}
	q.Set("src_file_key", srcFileKey)
	q.Set("dest_file_key", destFileKey)
	return doJSON[any](ctx, c, request{method: http.MethodGet, path: wpath(workspace, "/job_helpers/move_s3_file"), query: q, want: http.StatusOK})
}

// S3FileParams addresses an object in workspace or resource-backed storage.
type S3FileParams struct {
	FileKey        *string
	FileExtension  *string
	S3ResourcePath *string
	ResourceType   *string
}

func (p S3FileParams) query() url.Values {
	q := url.Values{}
	addParam(q, "file_key", p.FileKey)
	addParam(q, "file_extension", p.FileExtension)
	addParam(q, "s3_resource_path", p.S3ResourcePath)
	addParam(q, "resource_type", p.ResourceType)
	return q
}

// UploadS3File streams body to storage as application/octet-stream and
// returns the key it was stored under.
func (c *Client) UploadS3File(ctx context.Context, workspace string, body io.Reader, p S3FileParams) (models.UploadResult, error) {
	return doJSON[models.UploadResult](ctx, c, request{method: http.MethodPost, path: wpath(workspace, "/job_helpers/upload_s3_file"), query: p.query(), raw: body, want: http.StatusOK})
}

// DownloadS3File streams an object. The caller closes the reader.
func (c *Client) DownloadS3File(ctx context.Context, workspace, fileKey string, p S3FileParams) (io.ReadCloser, error) {
	p.FileKey = &fileKey
	p.FileExtension = nil
	return c.doStream(ctx, request{method: http.MethodGet, path: wpath(workspace, "/job_helpers/download_s3_file"), query: p.query(), want: http.StatusOK})
}

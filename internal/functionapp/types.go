package functionapp

import (
	"strings"
	"time"
)

// Status values written to AzureAppStatus by this tool.
const (
	AppStatusNew     = "New"
	AppStatusDeleted = "Deleted"
)

// PublishDescription is the description attached to every zip deployment.
const PublishDescription = "Deploy zip"

// publishNameLayout is the timestamp layout used to name publish records.
const publishNameLayout = "2006-01-02 15:04"

// deletedLayout matches the millisecond UTC JSON timestamps the backend stores.
const deletedLayout = "2006-01-02T15:04:05.000Z"

// FunctionApp is one provisioned Azure Function App within a project.
type FunctionApp struct {
	Name                string          `json:"Name" yaml:"name"`
	ProjectName         string          `json:"ProjectName,omitempty" yaml:"projectName,omitempty"`
	SiteUrl             string          `json:"SiteUrl" yaml:"siteUrl"`
	RuntimeStack        string          `json:"RuntimeStack" yaml:"runtimeStack"`
	RuntimeVersion      string          `json:"RuntimeVersion" yaml:"runtimeVersion"`
	Created             string          `json:"Created,omitempty" yaml:"created,omitempty"`
	AzureAppStatus      string          `json:"AzureAppStatus,omitempty" yaml:"azureAppStatus,omitempty"`
	ApplicationInsights bool            `json:"ApplicationInsights,omitempty" yaml:"applicationInsights,omitempty"`
	Publishes           []PublishRecord `json:"Publishes,omitempty" yaml:"publishes,omitempty"`
	Deleted             *string         `json:"Deleted,omitempty" yaml:"deleted,omitempty"`
}

// IsDeleted reports whether the app carries a soft-delete timestamp.
func (a FunctionApp) IsDeleted() bool {
	return a.Deleted != nil && *a.Deleted != ""
}

// PublishRecord is an immutable log entry for one deployment attempt.
type PublishRecord struct {
	Name              string `json:"Name" yaml:"name"`
	Description       string `json:"Description,omitempty" yaml:"description,omitempty"`
	ZipFilename       string `json:"ZipFilename" yaml:"zipFilename"`
	ZipFileSha        string `json:"ZipFileSha" yaml:"zipFileSha"`
	AzureDeployStatus string `json:"AzureDeployStatus,omitempty" yaml:"azureDeployStatus,omitempty"`
	Created           string `json:"Created,omitempty" yaml:"created,omitempty"`
}

// CreateRequest is the provisioning body for a new function app.
type CreateRequest struct {
	Name                string `json:"Name"`
	RuntimeStack        string `json:"RuntimeStack"`
	RuntimeVersion      string `json:"RuntimeVersion"`
	ApplicationInsights bool   `json:"ApplicationInsights"`
	AzureAppStatus      string `json:"AzureAppStatus"`
}

// NewCreateRequest builds a create body from a catalog runtime option.
func NewCreateRequest(name string, option RuntimeOption) CreateRequest {
	return CreateRequest{
		Name:                strings.TrimSpace(name),
		RuntimeStack:        option.Stack,
		RuntimeVersion:      option.Version,
		ApplicationInsights: false,
		AzureAppStatus:      AppStatusNew,
	}
}

// DeleteRequest is the soft-delete patch body.
type DeleteRequest struct {
	Deleted        string `json:"Deleted"`
	AzureAppStatus string `json:"AzureAppStatus"`
}

// NewDeleteRequest stamps a soft delete at now (converted to UTC).
func NewDeleteRequest(now time.Time) DeleteRequest {
	return DeleteRequest{
		Deleted:        now.UTC().Format(deletedLayout),
		AzureAppStatus: AppStatusDeleted,
	}
}

// UploadedFile describes a zip that the upload service has stored.
type UploadedFile struct {
	FileURL string `json:"fileUrl"`
	ShaURL  string `json:"shaUrl"`
	Name    string `json:"name"`
}

// NewPublishRecord builds the publish body for an uploaded file. The record is
// named after now in the caller's location.
func NewPublishRecord(file UploadedFile, now time.Time) PublishRecord {
	return PublishRecord{
		Name:        now.Format(publishNameLayout),
		Description: PublishDescription,
		ZipFilename: file.FileURL,
		ZipFileSha:  file.ShaURL,
	}
}

// Profile is the subset of the user profile patched when publishing.
type Profile struct {
	ID          string `json:"-" yaml:"id"`
	Name        string `json:"Name" yaml:"name"`
	Surname     string `json:"Surname" yaml:"surname"`
	Cell        string `json:"Cell" yaml:"cell"`
	Email       string `json:"Email" yaml:"email"`
	CompanyName string `json:"CompanyName" yaml:"companyName"`
	CompanyRole string `json:"CompanyRole" yaml:"companyRole"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp parses the backend's date formats. Timestamps without a zone
// are taken as UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatCreated renders a Created timestamp in loc, or "-" when it cannot be parsed.
func FormatCreated(created string, loc *time.Location) string {
	t, ok := ParseTimestamp(created)
	if !ok {
		return "-"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(publishNameLayout)
}

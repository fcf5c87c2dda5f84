package toolkit

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// EncodeKey renders s as an OData string key literal: single-quoted, with
// embedded quotes doubled and the content path-escaped.
func EncodeKey(s string) string {
	return "'" + url.PathEscape(strings.ReplaceAll(s, "'", "''")) + "'"
}

func projectFunctionAppsPath(project string) string {
	return fmt.Sprintf("ToolkitProject(%s)/FunctionApps", EncodeKey(project))
}

func functionAppPath(project, name string) string {
	return fmt.Sprintf("ToolkitAzureFunctionApp(Name=%s,ProjectName=%s)", EncodeKey(name), EncodeKey(project))
}

func publishesPath(project, name string) string {
	return functionAppPath(project, name) + "/Publishes"
}

// userProfilePath keeps the numeric key unquoted.
func userProfilePath(id string) string {
	return fmt.Sprintf("UserProfile(%s)", url.PathEscape(id))
}

// Query is an OData system query. Keys keep their "$" prefix unescaped and
// values are percent-encoded with %20 for spaces.
type Query map[string]string

// Encode renders the query sorted by key.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+url.PathEscape(q[k]))
	}
	return strings.Join(parts, "&")
}

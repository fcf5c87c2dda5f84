package functionapp

import "strings"

// Filter returns the apps whose name contains query, ignoring case. An empty
// query returns apps unchanged.
func Filter(apps []FunctionApp, query string) []FunctionApp {
	if query == "" {
		return apps
	}
	q := strings.ToLower(query)
	out := make([]FunctionApp, 0, len(apps))
	for _, a := range apps {
		if strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}
	return out
}

// Names extracts the app names in order.
func Names(apps []FunctionApp) []string {
	names := make([]string, len(apps))
	for i, a := range apps {
		names[i] = a.Name
	}
	return names
}

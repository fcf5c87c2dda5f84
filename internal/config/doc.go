// Package config provides configuration management for fnctl.
//
// Configuration is loaded from several sources and merged in order, with later
// sources overriding earlier ones:
//
//  1. Default configuration (embedded in the binary)
//  2. User configuration (~/.config/fnctl/config.yaml)
//  3. Project configuration (./.fnctl/config.yaml)
//  4. Environment variables (FNCTL_SERVER_URL, FNCTL_AUTH_TOKEN, FNCTL_PROJECT)
//
// Command line flags are applied on top by the cmd package.
//
// # Configuration Structure
//
//	backend:
//	  serverUrl: "https://toolkit.example.com"
//	  serviceRoot: "/odata/"
//	  authToken: "dXNlcjpwYXNz"   # sent as "Authorization: Basic <token>"
//	  timeout: 30s
//
//	project: "acme-portal"
//
//	upload:
//	  path: "/toolkit/zipdeploy/"
//	  localBaseUrl: "http://localhost:8888"
//	  publicBaseUrl: "https://uploads.example.com"
//
//	display:
//	  timezone: "Europe/Amsterdam"
//	  copiedIndicator: 2s
//
//	profile:
//	  id: "42"
//	  name: "Ada"
//	  email: "ada@example.com"
//
// The upload base URLs describe the checksum URL rewrite applied before a
// publish record is sent: checksum URLs starting with localBaseUrl are moved
// onto publicBaseUrl.
package config

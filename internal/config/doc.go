// Package config provides configuration loading, merging, and validation
// facilities for the student registry client and the reference server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (JSON with comments, or YAML)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] and [GetServerConfig]; flags
// are registered on a pflag.FlagSet with [BindClientFlags] or
// [BindServerFlags].
package config

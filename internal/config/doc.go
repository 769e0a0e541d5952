// Package config provides configuration loading, merging, and validation
// facilities for the wallet client and the stub backend.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// The main entry points are [GetClientConfig] for the CLI client and
// [GetBackendConfig] for the stub backend.
package config

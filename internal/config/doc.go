// Package config provides configuration loading, merging, and validation
// facilities for the go-tweet-client application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which builds the merged
// [StructuredConfig], applies client defaults, and returns the validated
// [ClientConfig] view consumed by the rest of the application.
package config

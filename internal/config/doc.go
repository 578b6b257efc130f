// Package config provides configuration loading, merging, and validation
// for the bot and the operator CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left zero by every source are filled from [Defaults]. The main
// entry point is [GetStructuredConfig].
package config

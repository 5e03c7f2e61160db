// Package config locates ~/.hcp and loads config.yaml.
package config

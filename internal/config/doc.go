// Package config manages user-level settings stored at ~/.automatiza/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the catalog override file and the default log level.
package config

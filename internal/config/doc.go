// Package config loads and saves the JSON settings file that holds
// persistent defaults: the default output directory, the generated
// file name suffix, and the default log level.
package config

// Package config loads, normalizes, and validates signdex configuration.
//
// Configuration is TOML, resolved from an explicit --config path, then
// ~/.config/signdex/config.toml, then ./signdex.toml. Defaults cover every
// field so signdex runs without a config file; the vocabulary defaults to the
// built-in target gloss list and can be replaced wholesale from the file.
// All path fields are tilde-expanded and absolute after Load.
package config

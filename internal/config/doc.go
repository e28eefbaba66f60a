// Package config provides configuration management for the pono CLI.
//
// Two kinds of configuration live here. Tool settings are small knobs read
// through Viper from an optional settings file and PONO_* environment
// variables. The link document is the TOML file declaring which links pono
// manages.
//
// # Settings
//
// The settings file is <XDG_CONFIG_HOME>/pono/settings.yaml:
//
//	config: ~/dotfiles/pono.toml
//	log_format: text
//
// Every key can be overridden from the environment (PONO_CONFIG,
// PONO_LOG_FORMAT) and, for the link document, with --config.
//
// # Link Document
//
// The link document holds one table per entry under the top-level
// "ponos" table:
//
//	[ponos.zsh]
//	source = "./examples/from/zshrc"
//	target = "./examples/to/.zshrc"
//
// Use [LoadDocument] to read and validate it:
//
//	doc, err := config.LoadDocument("pono.toml")
//	if err != nil {
//	    return err // a *link.Error of kind KindConfig
//	}
//	entries := doc.Entries(link.Select(doc.Names(), args))
//
// Decoding is strict. Unknown keys, a missing ponos table and entries
// without a source or target are rejected before any entry is processed.
package config

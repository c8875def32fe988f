// Package confmap provides a nested configuration container with
// template-based validation and path-qualified, customizable error
// messages.
//
// # Overview
//
// A Config merges user-supplied values with defaults into one recursive
// key/value tree. Keys may be text or integers; every key is normalized
// to a safe field name and both the raw key and the normalized name
// resolve to the same value. A declarative template of per-field checks
// is then validated against the tree in one pass, reporting every
// problem instead of stopping at the first.
//
// # Quick Start
//
// Build a Config from values and defaults:
//
//	cfg, err := confmap.New(
//	    map[string]any{"host": "localhost", "port": 9000},
//	    map[string]any{"port": 8080, "debug": false},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Values win over defaults; defaults only fill the gaps, descending into
// nested mappings without replacing them. Nested mappings become nested
// Configs:
//
//	db, _ := cfg.Sub("database")
//	host, _ := db.Get("host")
//
// # Key Normalization
//
// Keys are normalized on every write and lookup: punctuation and
// whitespace become "_", a leading digit is prefixed with "_", and the
// empty key becomes "_". Get(1337) and Get("_1337") are the same lookup.
//
// # Validation
//
// A Template mirrors the tree's shape; each leaf is a check from the
// check package, or a plain value compared literally:
//
//	tmpl := confmap.Template{
//	    "host": check.Type[string](),
//	    "port": check.AnyOf(check.Type[int](), check.Type[string]()),
//	    "mode": check.AllOf(check.Type[string](), check.Func(known)),
//	}
//	ok := cfg.Validate(tmpl)
//
// Validate visits every template field at every depth, reports one
// message per missing field or failed check, and returns true only when
// nothing was reported.
//
// # Error Messages
//
// Messages customize what gets reported. The reserved "_" entry sets the
// general prefix/invalid/missing/suffix for a subtree and is inherited
// by descendants until redefined:
//
//	msgs := confmap.Messages{
//	    "_":    confmap.Descriptor{"invalid": "is not acceptable"},
//	    "port": "must be a port number",
//	}
//	ok := cfg.Validate(tmpl, confmap.WithMessages(msgs))
//
// # Reporting
//
// By default messages are printed to standard output. Substitute the
// hook to collect, log or fail hard:
//
//	var col reporters.Collector
//	ok := cfg.Validate(tmpl, confmap.WithReporter(col.Report))
//
// # Loading From Files
//
// The loader package builds the input mappings from YAML, JSON and
// dotenv files, later files overriding earlier ones:
//
//	l := loader.New()
//	l.AddFile("config.yaml", false)
//	l.AddFile("config.local.yaml", true)
//	values, err := l.Load()
package confmap

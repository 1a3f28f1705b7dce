// Package binding maps source-specific input codes to navigation
// intents.
//
// A Binding names one input code on one source and the intent it
// produces; a Table indexes the active bindings for lookup by the
// adapters. Tables start from built-in Defaults and may be overridden
// by a persisted, versioned TOML blob of user preferences. Malformed
// entries are rejected individually - a bad entry never discards the
// rest of the table, and the engine never fails initialization over
// configuration.
//
// A Watcher reloads the persisted file on change so user edits apply
// live.
package binding

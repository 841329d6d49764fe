// Package settings holds the user-facing configuration of textpath tools.
//
// A [Settings] value is plain data. [Load] reads one from TOML or YAML,
// filling defaults first, and the conversion methods turn it into the option
// types of the text, editor and shapes packages.
//
// There is no global registry. Programs that need change notification own
// a [Store], subscribe to it, and may keep it in sync with a file through
// [Watch].
package settings

// Package cli wires the hamtour commands onto cobra.
//
// sort fingerprints every image below its directory arguments, orders them
// along a short Hamming path and links the result into an output directory as
// 0.ext, 1.ext and so on. hash prints one fingerprint per file argument.
//
// Settings come from the built-in defaults, then an optional --config file,
// then any flag the user set explicitly. Diagnostics go to stderr through a
// charmbracelet/log logger carried in the command context; -v adds the debug
// lines.
package cli

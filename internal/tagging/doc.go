// Package tagging orchestrates a complete tagging run.
//
// The Manager ties the other packages together in a fixed sequence:
//
//  1. Initialize parses the album sheet and auto-matches the directory's
//     audio files against the tracklist.
//  2. A front end (console loop or TUI) drives the review session exposed
//     by Session until the operator commits or aborts.
//  3. Apply builds a write plan per file, diffs it against the stored tags
//     and persists only the files where something actually differs.
//
// No file is written before the review outcome is resolved: an aborted
// review means zero persistence calls. A single file's write failure is
// reported through the progress callback, counted in the Summary, and never
// stops the remaining files.
//
// Progress is reported through a callback of leveled Events; the Manager
// never prints anything itself.
package tagging

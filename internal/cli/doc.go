// Package cli implements the interactive terminal client of PathPradarshak.
//
// The client is a read–eval–print loop. Each line is a command name
// followed by optional arguments; commands that need more input prompt for
// it. Type "help" for the list of commands available in the current state.
//
// Input helpers
//
//   - GetSimpleText reads one trimmed line.
//   - GetMultiline reads lines until an empty one.
//   - GetPassword reads without echo when stdin is a terminal and falls
//     back to a plain line otherwise.
//
// Output is styled with lipgloss using the persisted light or dark theme.
package cli

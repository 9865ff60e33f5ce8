// Package ui contains the Bubble Tea program that powers the template picker.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, rendering, and save flows.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses, window resizes,
//     catalog load results, ticks).
//   - Key handling fans out by input mode: search keys edit the filter query
//     (internal/ui/input.go), browse keys move the cursor and toggle
//     selections (internal/ui/navigation.go), and confirm keys drive the
//     append-or-overwrite modal (internal/ui/save.go).
//
// State ownership:
//   - All session state lives in internal/ui/state.Session: the template
//     catalog, filter query, cursor, selections, preview mode and scroll,
//     and transient notifications. Handlers mutate the session and the view
//     renders from it; nothing else holds UI state.
//   - The template catalog itself is fetched and cached by internal/catalog;
//     the model only triggers a load and applies the resulting snapshot.
//
// Asynchronous work:
//   - The catalog load runs via loadCatalogCmd and completes with a
//     catalogLoadedMsg, which populates the session exactly once.
//   - A 100ms tick expires notifications; the spinner animates only while
//     the catalog is loading.
//
// This separation keeps Model.Update compact and makes it easier to test
// independent concerns (filtering, selection, saving) without needing to
// reason about the entire TUI at once.
package ui

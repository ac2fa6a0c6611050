// Package ui implements the TRANSIT terminal site with Bubble Tea.
//
// Core abstractions:
//   - View: a screen region with its own model, update, view (Elm-style)
//   - Scheduler: named timer slots whose pending tick can be replaced or cancelled
//   - TransitionController: owns the current panel and sequences every swap
//   - OverlayManager: modals and the decorative train strip, top-most first
//   - Toast: the single transient status line
//   - Chrome: header, tabs and panel content built once at startup
//
// All state changes happen in Update on the Bubble Tea event loop; blocking
// work (clipboard, browser launch, image decode) runs in tea.Cmds.
package ui

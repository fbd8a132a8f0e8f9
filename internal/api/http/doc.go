// Package http provides the REST surface of the shell engine.
//
// The browser renderer drives gestures over the WebSocket stream; this
// package covers everything discrete: session login and logout, window
// lifecycle commands, dock state, launcher filtering, and the app
// catalog. Handlers validate input, call the owning domain manager, and
// return JSON. Total operations report success as a boolean rather than
// an error status.
package http

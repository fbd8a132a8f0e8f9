// Package session implements the login gate in front of the desktop.
//
// The gate presents a fixed set of selectable identities and accepts
// any non-empty credential string; this is a UI shell, not an auth
// system, so nothing is ever verified or stored. On success the
// user-selected callback fires exactly once per session and the desktop
// takes over until logout.
//
// The only failure modes mirror the disabled-submit rules of the login
// form: no identity selected (unknown id) or an empty credential.
package session

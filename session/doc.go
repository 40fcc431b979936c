// Package session holds caller-side session state: the user profile and the
// query history. Nothing here is persisted or visible to the engine except
// as an optional read-only PatientContext.
package session

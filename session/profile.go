package session

import "github.com/adi-1505/medassist/core"

// Profile holds caller-owned patient details for the current session. It
// lives entirely in memory and is never persisted; the engine only ever sees
// the read-only PatientContext derived from it.
type Profile struct {
	Age         int
	Gender      string
	Conditions  []string
	Medications []string
	Allergies   []string
}

// PatientContext returns an immutable snapshot of the profile for the
// engine. List fields are copied so later profile edits cannot leak into an
// in-flight query.
func (p *Profile) PatientContext() *core.PatientContext {
	if p == nil {
		return nil
	}
	return &core.PatientContext{
		Age:         p.Age,
		Gender:      p.Gender,
		Conditions:  append([]string(nil), p.Conditions...),
		Medications: append([]string(nil), p.Medications...),
		Allergies:   append([]string(nil), p.Allergies...),
	}
}

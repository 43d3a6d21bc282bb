// Package screens composes custom main views out of pluggable layouts and
// widgets.
//
// A Layout divides the display into Zones and hosts at most one Widget per
// zone. Factories for widgets, layouts and themes are registered in a
// Catalog at startup; instances are created from persisted records in
// package storage and write every option change straight back into them.
//
// The Set owns the layout instances of the up to storage.MaxCustomScreens
// screens of the current model. Slot 0 always holds a screen; used slots
// are contiguous from 0, and every slot's instance is bound to the record
// at the same index.
package screens

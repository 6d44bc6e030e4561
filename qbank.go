// Package qbank turns loosely structured study documents into a catalog of
// question records. It segments markdown into question blocks, extracts and
// classifies their fields, scores answer quality, and reconciles the result
// against a keyed store so repeated imports converge on the same catalog.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or role (e.g., sqlite/, http/, parse/).
package qbank

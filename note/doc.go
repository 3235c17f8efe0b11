// Package note implements per-user note storage and its HTTP surface.
//
// Every store operation is scoped by the owning user id, so a note that
// belongs to someone else is indistinguishable from one that does not
// exist. Listing uses overfetch pagination: the store reads one row past
// the page size and reports whether more pages remain.
package note

// Package image handles user image uploads. File bytes live in object
// storage under a per-user prefix; the database keeps a metadata row per
// image so deletion and ownership checks stay in SQL like the rest of
// the app.
package image

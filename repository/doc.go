// Package repository holds the PostgreSQL implementations of the
// domain store interfaces. Every query runs under a per-call timeout
// and driver errors are mapped to the domain sentinels at this
// boundary, so handlers never see pgx types.
package repository

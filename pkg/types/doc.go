// Package types defines the progress data model for the CrashTrack
// companion tracker: per-level gem sets, timed challenge records, the
// full progress snapshot, backup document shapes, and the pure update
// functions that every mutation path funnels through.
package types

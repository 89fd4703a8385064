// Package dataset stores per-trial recordings as a compact gob file.
//
// A recording session is a Set: a map from trial index to a Trial holding
// the activity matrix (time bins × neurons) and its time axis. Sets are
// written with Save / Encode and read back with Load / Decode; matrices are
// carried in gonum's binary format.
//
// EnsureLocal implements the "download once" step of a pipeline: it checks a
// marker path and only calls the supplied fetch function on a cache miss.
// How the data is fetched (HTTP, archive extraction, format conversion)
// stays with the caller.
package dataset

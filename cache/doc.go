// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package cache provides the staleness-aware, in-memory document cache.
//
// Entries are keyed by resolved absolute path and carry the validated
// document collection, a fingerprint derived from the path's modification
// time, and the insertion time. Staleness is detected lazily at lookup:
// there are no background watchers. A lookup misses when the entry is
// absent, older than the freshness window, or when the recomputed
// fingerprint no longer matches the stored one; stale entries are evicted
// as they are discovered.
//
// # Thread Safety
//
// The cache is safe for concurrent Lookup/Store/Clear from any number of
// goroutines without external locking. Operations on different keys never
// block each other, a store for a key is atomic with respect to concurrent
// lookups of that key, and no lock is held across the filesystem check.
//
// # Known Limitation
//
// Directory sources are fingerprinted at directory granularity: a change to
// a file inside a watched directory is only detected through the
// directory's own modification time, which some filesystems update at
// coarse resolution. The short freshness window bounds how long such a
// change can go unnoticed.
package cache

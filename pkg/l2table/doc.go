// Package l2table implements a cuckoo-hashed MAC address to gate index
// table tuned for Ethernet-rate lookups.
//
// An entry is a single bit-packed 64-bit word: a 48-bit MAC address, a
// 15-bit gate index, and a 1-bit occupancy flag. Entries live in
// fixed-size buckets; every address maps to two candidate buckets
// (primary and alternate) under two-choice hashing, and insertion
// performs at most one level of displacement to resolve collisions.
//
// Find takes the table's read lock, so any number of Finds run
// concurrently, and reads every entry with a single aligned atomic
// 64-bit load, so an entry is never observed as a torn word. Add,
// Delete and Flush take the table's write lock, because
// displacement moves an entry with two separate stores that must not be
// interleaved with a reader.
package l2table

// Package buffer provides the growable byte storage behind a text box.
//
// A Buffer holds single-byte characters and supports positional insert and
// delete. Every mutating call checks its bounds before touching storage, so a
// failed call never leaves a partial shift behind. Capacity grows by doubling
// and never shrinks.
//
// Readers (measurement, row layout, quad building) address the buffer through
// transient Spans and must validate them against the current length; the
// Generation counter changes on every successful mutation so that derived
// results can be cached safely.
package buffer

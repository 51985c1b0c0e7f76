// Package segment implements the chunk storage behind a segmented deque.
//
// A Directory is a row-addressed array of optional owning chunk handles. Rows
// outside the active range are nil. Directories are never resized in place:
// growth builds a larger Directory with the active rows recentered, after which
// the old one is retired so that cursors still holding it can detect that they
// are stale.
package segment

// Package ir holds the in-memory document model.
//
// A [Node] is one of three kinds: a string leaf, a numeric leaf holding the
// canonical text of a number, or an object whose keys are unique and kept
// in insertion order.  Objects own their children exclusively; [Node.Clone]
// duplicates a whole subtree.
//
// Merging follows "first write wins": [Node.Insert], [Apply] and
// [ApplyWithPrefix] never replace a key that is already present.
package ir

// Package art implements an Adaptive Radix Tree: a byte-keyed trie
// whose internal node layout grows (I4 -> I16 -> I48 -> I256) and
// shrinks with the observed branching factor, plus path compression
// for runs of single-child nodes.
//
// The core node taxonomy lives in nodeptr.go, header.go and the four
// inodeN.go files. leaf.go, key.go and map.go are the collaborators
// that turn the core into a usable ordered key-value index.
package art

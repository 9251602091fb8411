// Package block provides traversal of the blocks of an ir.Function along its
// control flow edges.
package block

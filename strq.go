// Package strq provides a FIFO queue of strings backed by a
// singly-linked chain with constant-time access to both ends, plus
// in-place reversal and sorting of the chain.
package strq

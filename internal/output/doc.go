// Package output renders a sorted model.NumberList to its two sinks: the
// console (Present) and the sorted_stack.txt file (Persist).
//
// Both sinks receive the same sequence, the ascending list reversed so the
// largest value comes first. Each function takes the ascending list and
// builds its own descending copy, so neither can affect what the other
// writes.
package output

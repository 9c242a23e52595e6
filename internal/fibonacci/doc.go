// Package fibonacci generates the leading terms of the Fibonacci sequence
// using arbitrary-precision integers.
//
// The sequence follows the convention F(0) = 0, F(1) = 1 and
// F(i) = F(i-1) + F(i-2). Terms are produced by iterative accumulation with
// two running values, so generating n terms costs n additions.
package fibonacci

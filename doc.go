// Package sharecheck reconstructs the polynomial behind a set of shares with
// exact rational arithmetic, and flags the shares that do not lie on it.
//
// The first k shares, in ascending index order, determine a polynomial of
// degree at most k-1. Every share, including those beyond the first k, is then
// evaluated against that polynomial. No floating point is involved anywhere,
// so a share is reported if and only if it is truly inconsistent.
package sharecheck

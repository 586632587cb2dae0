// Package cpf validates Brazilian individual taxpayer numbers (CPF).
//
// A CPF has eleven decimal digits, usually displayed as XXX.XXX.XXX-XX. The
// last two digits are check digits derived from the preceding ones with a
// weighted sum modulo 11:
//
//  1. Take the first N digits (N = 9 for the first check digit, 10 for the second).
//  2. Weigh them from N+1 down to 2 and sum the products.
//  3. A remainder below 2 gives check digit 0, anything else gives 11 - remainder.
//
// Two entry points exist because callers hold the number in both shapes:
// Validate takes the punctuated form and ValidateDigits takes the eleven bare
// digits. Both return (false, nil) for a well-formed number whose check digits
// do not match; malformed input is reported through the sentinel errors in
// errors.go, to be compared with errors.Is.
//
// The package keeps no state and performs no I/O, so every function is safe for
// concurrent use.
package cpf

// Package shell breaks operator input into tokens.
//
// Only a small part of the Shell Command Language is supported: the input is
// split on blanks and a word may be wrapped in double quotes to keep embedded
// blanks. There are no operators, expansions or escapes, see
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html
// for the full language this is a (very) reduced form of.
package shell

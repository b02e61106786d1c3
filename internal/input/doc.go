// Package input implements the token reader for the sortstack CLI.
//
// Standard input is treated as a stream of whitespace-delimited tokens.
// Each token is classified as one of:
//
//   - a number: anything strconv.Atoi accepts (base 10, optional sign)
//   - the sentinel: "done" in any letter case, which ends input
//   - invalid: everything else, including integers that overflow int
//
// Numbers are collected in insertion order into a model.NumberList. Invalid
// tokens produce a warning line and are skipped; they never stop the read
// loop. End of stream ends input just like the sentinel does.
//
// The Reader works on any io.Reader and writes warnings to any io.Writer,
// so it can be driven from a strings.Reader in tests without a terminal.
package input

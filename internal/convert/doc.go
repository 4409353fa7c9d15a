// Package convert turns argument tokens into typed handler arguments.
//
// For each parameter, in order: an omitted optional parameter binds its
// default, a greedy parameter joins every remaining token with a single
// space, an enumeration parameter matches a member name exactly, then the
// first registered Converter claiming the parameter is used, and finally
// the builtin parsing for the parameter's TypeTag applies.
//
// Any failure aborts the whole conversion with a usage.Error of kind
// ErrConversion that wraps a *Error.
package convert

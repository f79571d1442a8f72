// Package fakes provides in-memory implementations of the repository
// interfaces for usecase and handler tests.
package fakes

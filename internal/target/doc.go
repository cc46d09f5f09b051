// Package target locates the live Double Commander configuration files and
// keeps a one-deep backup of each before it is rewritten.
package target

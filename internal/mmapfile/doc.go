// Package mmapfile loads whole files into memory for single-pass parsing.
package mmapfile

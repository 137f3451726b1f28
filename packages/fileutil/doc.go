// Package fileutil wraps the CSV codec with file I/O (including non-UTF-8
// encodings) and provides a download-wait helper for files produced
// asynchronously by other processes.
package fileutil

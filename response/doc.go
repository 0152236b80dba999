// Package response holds the decoded results of engine queries and the
// ownership protocol for their serialized payloads.
//
// Every response carries two views of the same result: structured
// accessors over the decoded document, and the raw serialized payload.
// TakeBlob transfers the payload out of the response exactly once; a
// second transfer fails with AlreadyTransferred. The returned Blob is
// then the sole owner of the bytes and Release is its single release
// path. Closing a response after a transfer leaves the transferred
// bytes untouched.
//
// Structured accessors validate their indices and report
// IndexOutOfRange rather than panicking, so a response can be probed
// without knowing its shape up front.
package response

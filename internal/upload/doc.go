// Package upload implements the multipart intake pipeline: a splitter that
// partitions an incoming multipart body into scalar fields and file parts
// under a total size cap, and a sink that persists file streams beneath a
// local upload root, returning relative paths suitable for storage and
// static serving.
package upload

// Package source supplies decoded images to the composition pipeline.
//
// Images come from the filesystem (with glob-pattern path resolution) or
// from the system clipboard. Decoders for PNG, JPEG, GIF, BMP, TIFF, and
// WebP are registered. Decode failures are reported here, before the
// pipeline runs; the compose package never sees an invalid image.
package source

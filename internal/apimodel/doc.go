// Package apimodel defines the in-memory description of a library's public API
// that the renderer turns into Markdown: modules and their exported data types,
// functions, type classes and instances.
//
// Export is a closed sum type. Partition is the single place that classifies
// exports and it rejects anything that is not one of the four variants.
// Model documents (YAML or JSON) are decoded with Decode or LoadFile.
package apimodel

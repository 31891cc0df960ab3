// Package render turns API model modules into Markdown documentation pages and
// builds the index page that links them.
//
// Every page is assembled from fixed per-variant templates and then passed once
// through a markdown.Formatter. Rendering has no hidden inputs: the same model
// always produces the same bytes.
//
// Page layout of a module:
//
//	MODULE [<name>](<source url>)
//	type classes   (model order)
//	data types     (model order, each with its first constructor's methods sorted by name)
//	instances      (sorted by name)
//	functions      (sorted by name)
package render

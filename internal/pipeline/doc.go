// Package pipeline loads one document into a checked object graph.
//
// Load runs the stages in order: building selection, validators,
// materialization, Check and the optional surface collapse. Validator
// errors are load-fatal and no graph is returned. Data violations found
// by Check are returned with the graph, prefixed with the source path.
package pipeline

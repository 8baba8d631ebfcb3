// Package rules implements the document validators run before a graph is
// built.
//
// A RuleSet is a YAML-declared list of assertions in the style of
// Schematron: every element matching a rule's context path must have a
// number of children at each assertion's test path within bounds. Exec
// runs xmllint against an XSD.
//
// Both satisfy the pipeline's validator contract:
//
//	errs, warnings, err := rules.Default().Validate(ctx, "home.xml")
//
// err reports a failure to run the validator; errs and warnings report
// what the validator found in the document.
package rules

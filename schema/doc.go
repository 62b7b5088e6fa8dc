// Package schema provides the node constructors used to build a
// validation schema: scalar leaves, containers, objects with defaults,
// enumerations, unions, forward references and refine steps. Every
// constructor returns a validated.Node; built nodes are immutable and
// safe to share across concurrent validations.
package schema

// Package doxygen models the documentation tree produced by an extractor such
// as Doxygen.
//
// Node is a sealed sum type: every node shape is a struct in this package and
// plain text runs are the Text variant. Children live in shape-specific fields
// (a MemberDef has Params and EnumValues, a DocPara has mixed Content), so
// traversal is always written per shape.
//
// Trees are read from a YAML serialisation (see Decode), and FileParser loads
// one compound tree per refid on demand.
package doxygen

// Package kir implements the Kryon Intermediate Representation: a tree of UI
// components with styles, layout configuration, event bindings, and reactive
// state, shared between frontend parsers and rendering/codegen backends.
//
// The package holds the data model only. Layout computation lives in
// [github.com/waozixyz/kir/pkg/layout], the KIRB binary and JSON wire codecs
// in [github.com/waozixyz/kir/pkg/codec], the expression/logic model in
// [github.com/waozixyz/kir/pkg/logic], and tree inspection tooling in
// [github.com/waozixyz/kir/pkg/dump].
package kir

// Package manifest defines the YAML file that tells naught-gen which Go
// types to extract mimicry surfaces from and where to write them.
//
// # Schema Overview
//
//	version: "1"
//	package: surfaces              # generated package name
//	output: ./surfaces             # output directory
//	filename: naught_surfaces.go   # generated file name
//	targets:
//	  - package: example.com/store
//	    types: ["Order", "*Service"] # doublestar patterns, empty = all exported types
//
// Type patterns are matched against bare type names with
// github.com/bmatcuk/doublestar/v4, so "*Service" selects every exported
// type whose name ends in Service.
package manifest

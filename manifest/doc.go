// Package manifest loads declarative route tables from YAML.
//
// A manifest binds templates to named handlers:
//
//	routes:
//	  - pattern: /
//	    handlers: [layout, home]
//	  - patterns: [/users/{id:int}, /u/{id:int}]
//	    handlers: [layout, user]
//
// Handler names are resolved against the dispatcher registry when a chain
// runs, so a manifest can be applied before the handlers are registered.
// Validate checks the names ahead of time.
package manifest

/*
Package ports defines the driven ports (interfaces) of the survey shell.

These interfaces decouple the HTTP host from where survey documents live, so
the same handlers can serve from a directory, an embedded filesystem, memory,
or a Redis-backed cache.

# Key Interfaces

  - SourceLoader: Retrieves a raw survey document by name.
  - SourceLister: A SourceLoader that can also enumerate its documents.
*/
package ports

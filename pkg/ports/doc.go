/*
Package ports defines the driven ports (interfaces) for fibgen.

These interfaces decouple the adapters from concrete storage backends.

# Key Interfaces

  - RecordStore: Responsible for persisting and listing request journal Records.
*/
package ports

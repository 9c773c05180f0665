/*
Package ports defines the driven-side interfaces of the validation engine.

Environment data reaches the engine only through the Source port, so the core
never reads ambient process state directly. Adapters for dotenv files, the
live process table and in-memory maps live under pkg/adapters.
*/
package ports

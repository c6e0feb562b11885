// Package config defines the engine's tunable parameters — the rolling
// window size, the vertex table's initial bucket count, and the degree
// histogram's initial capacity — and how they are resolved from defaults,
// functional options, and environment variables.
//
// All three parameters correspond 1:1 to #defines in the original
// implementation's venmoGraphParams.h (WINDOW_SECONDS, INITIAL_TABLE_SIZE,
// INIT_MAX_LEN) and share their default values.
package config

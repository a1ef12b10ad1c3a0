// Package namegen derives short descriptive filenames for notes by asking a
// local text-generation service (Ollama's /api/generate endpoint).
//
// The service is strictly optional: the call is bounded by a short timeout
// and any failure (service down, bad response, timeout) is logged and
// answered with the fixed default name, so Generate never fails.
package namegen

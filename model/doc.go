// Package model defines the provider-agnostic abstraction for the external
// language model CogMesh collaborates with.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Stay non-streaming: store operations are bounded and synchronous, so
//     the knowledge extraction path only needs complete responses
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package so higher layers (extract, the facade) remain decoupled from
// vendor SDKs.
package model

/*
 * Copyright 2019 The DigestKit Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package hash provides abstracted hash functionality.
//
// This package provides a generic 32-byte hash value type with hex,
// base58, JSON and YAML codecs, one-shot helpers over the algorithms in
// this repository, and a name-keyed suite registry so callers can pick
// an algorithm at runtime.
//
// Q: WHY SHA-256 twice in DoubleHashB?
//
// A: SHA-256(SHA-256(x)) was proposed by Ferguson and Schneier in
// "Practical Cryptography" as a way to make SHA-256 invulnerable to
// "length-extension" attacks, at hardly any cost over plain SHA-256.
// The sponge constructions in crypto/keccak are structurally immune and
// need no such wrapping.
package hash

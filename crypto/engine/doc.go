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

// Package engine provides the streaming skeleton shared by every block
// hash in this repository.
//
// A concrete hash supplies only its block size, digest size, per-block
// transform and padding rule; the engine owns the block buffer and does
// all chunking, so an algorithm never sees a partial block. Input may be
// sliced across Write calls in any way without changing the digest.
//
// One engine instance backs one hashing session. Extracting a digest
// leaves the engine freshly reset, and a running computation can be
// forked with CopyStateTo to derive several digests sharing a common
// prefix.
package engine

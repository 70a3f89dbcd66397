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

package hash

import (
	"crypto/sha256"
	"encoding/binary"
	"hash/fnv"

	// "minio/blake2b-simd" supports more CPU instructions than
	// "golang.org/x/crypto/blake2b" on amd64
	blake2b "github.com/minio/blake2b-simd"
	"github.com/pkg/errors"

	"github.com/DigestKit/DigestKit/crypto/engine"
	"github.com/DigestKit/DigestKit/crypto/keccak"
	"github.com/DigestKit/DigestKit/crypto/ripemd160"
)

// HashBSize is the size of HashB.
const HashBSize = sha256.Size

// ErrUnknownAlgorithm indicates a name with no registered hash suite.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// HashSuite contains the hash length and the func handler.
type HashSuite struct {
	HashLen  int
	HashFunc func([]byte) []byte
}

// HashB calculates sha256(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates sha256(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// FNVHash32B calculates fnv-1a 32 of b and returns the resulting bytes.
// Non-cryptographic; bucketing only.
func FNVHash32B(b []byte) []byte {
	hash := fnv.New32()
	hash.Write(b)
	return hash.Sum(nil)
}

// FNVHash32uint return the uint32 value of fnv hash 32 of b.
func FNVHash32uint(b []byte) uint32 {
	return binary.BigEndian.Uint32(FNVHash32B(b))
}

// DoubleHashB calculates sha256(sha256(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates sha256(sha256(b)) and returns the resulting bytes
// as a Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// THashB calculates sha256(blake2b-512(b)) and returns the resulting
// bytes. The blake2b pass blocks length-extension the same way SHA-256d
// does, with an unrelated inner compression function.
func THashB(b []byte) []byte {
	first := blake2b.Sum512(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// THashH calculates sha256(blake2b-512(b)) and returns the resulting bytes
// as a Hash.
func THashH(b []byte) Hash {
	first := blake2b.Sum512(b)
	return Hash(sha256.Sum256(first[:]))
}

// Keccak256B calculates legacy keccak-256(b) and returns the resulting bytes.
func Keccak256B(b []byte) []byte {
	hash := keccak.Sum256(b)
	return hash[:]
}

// Keccak256H calculates legacy keccak-256(b) and returns the resulting bytes
// as a Hash.
func Keccak256H(b []byte) Hash {
	return Hash(keccak.Sum256(b))
}

// Ripemd160B calculates ripemd-160(b) and returns the resulting 20 bytes.
func Ripemd160B(b []byte) []byte {
	hash := ripemd160.Sum(b)
	return hash[:]
}

func engineFunc(newDigest func() engine.Digest) func([]byte) []byte {
	return func(b []byte) []byte {
		return newDigest().DigestOf(b)
	}
}

// streaming digest constructors, for algorithms built on crypto/engine
var constructors = map[string]func() engine.Digest{
	"keccak256": keccak.New256,
	"keccak384": keccak.New384,
	"keccak512": keccak.New512,
	"sha3-256":  keccak.NewSHA3_256,
	"sha3-384":  keccak.NewSHA3_384,
	"sha3-512":  keccak.NewSHA3_512,
	"ripemd160": ripemd160.New,
}

// one-shot suites, covering both engine-backed and stdlib-backed funcs
var suites = map[string]HashSuite{
	"sha256":  {HashLen: sha256.Size, HashFunc: HashB},
	"sha256d": {HashLen: sha256.Size, HashFunc: DoubleHashB},
	"thash":   {HashLen: sha256.Size, HashFunc: THashB},
}

func init() {
	for name, newDigest := range constructors {
		suites[name] = HashSuite{
			HashLen:  newDigest().Size(),
			HashFunc: engineFunc(newDigest),
		}
	}
}

// NewDigest returns a fresh streaming digest for the named engine-backed
// algorithm. Stdlib-backed suite names (sha256, sha256d, thash) have no
// streaming constructor here and report ErrUnknownAlgorithm.
func NewDigest(name string) (engine.Digest, error) {
	newDigest, ok := constructors[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownAlgorithm, name)
	}
	return newDigest(), nil
}

// Suite returns the one-shot hash suite registered under name.
func Suite(name string) (HashSuite, error) {
	suite, ok := suites[name]
	if !ok {
		return HashSuite{}, errors.Wrap(ErrUnknownAlgorithm, name)
	}
	return suite, nil
}

// SuiteNames lists the registered one-shot suite names.
func SuiteNames() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	return names
}

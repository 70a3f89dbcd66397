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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"

	"github.com/DigestKit/DigestKit/crypto/engine"
	"github.com/DigestKit/DigestKit/crypto/hash"
	"github.com/DigestKit/DigestKit/crypto/hmac"
	"github.com/DigestKit/DigestKit/utils/log"
)

var (
	version     = "unknown"
	algo        string
	hmacKeyHex  string
	truncLen    int
	useBase58   bool
	logLevel    string
	showVersion bool
)

const name = "digest"

func init() {
	flag.StringVar(&algo, "a", "keccak256", "Hash algorithm: "+strings.Join(sortedNames(), ", "))
	flag.StringVar(&hmacKeyHex, "hmac-key", "", "Hex-encoded HMAC key; keyed mode when non-empty")
	flag.IntVar(&truncLen, "n", 0, "Truncate the digest to n bytes (0 for the full digest)")
	flag.BoolVar(&useBase58, "base58", false, "Print the digest in base58 instead of hex")
	flag.StringVar(&logLevel, "log-level", "", "Console log level: debug info warning error fatal panic")
	flag.BoolVar(&showVersion, "version", false, "Show version information and exit")
}

func sortedNames() []string {
	names := hash.SuiteNames()
	sort.Strings(names)
	return names
}

func main() {
	flag.Parse()
	if showVersion {
		fmt.Printf("%v %v %v %v %v\n",
			name, version, runtime.GOOS, runtime.GOARCH, runtime.Version())
		os.Exit(0)
	}
	log.SetStringLevel(logLevel, log.InfoLevel)

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	exitCode := 0
	for _, file := range files {
		sum, err := digestFile(file)
		if err != nil {
			log.WithField("file", file).WithError(err).Error("hash failed")
			exitCode = 1
			continue
		}
		if useBase58 {
			fmt.Printf("%s  %s\n", base58.Encode(sum), file)
		} else {
			fmt.Printf("%s  %s\n", hex.EncodeToString(sum), file)
		}
	}
	os.Exit(exitCode)
}

func digestFile(file string) (sum []byte, err error) {
	var in io.ReadCloser
	if file == "-" {
		in = ioutil.NopCloser(os.Stdin)
	} else {
		if in, err = os.Open(file); err != nil {
			return
		}
	}
	defer in.Close()
	return digestReader(in)
}

// digestReader hashes r with the selected algorithm, streaming through
// the engine whenever the algorithm supports it and falling back to the
// one-shot suite otherwise.
func digestReader(r io.Reader) (sum []byte, err error) {
	d, derr := hash.NewDigest(algo)
	if derr != nil {
		if hmacKeyHex != "" {
			// Keyed mode needs a streaming digest underneath.
			err = derr
			return
		}
		return digestOneShot(r)
	}

	if hmacKeyHex != "" {
		var key []byte
		if key, err = hex.DecodeString(hmacKeyHex); err != nil {
			err = errors.Wrap(err, "decode hmac key")
			return
		}
		d = hmac.New(func() engine.Digest {
			nd, _ := hash.NewDigest(algo)
			return nd
		}, key)
	}

	if _, err = io.Copy(d, r); err != nil {
		return
	}
	if truncLen > 0 && truncLen < d.Size() {
		sum = make([]byte, truncLen)
		d.DigestTo(sum)
		return
	}
	sum = d.Digest()
	return
}

func digestOneShot(r io.Reader) (sum []byte, err error) {
	suite, err := hash.Suite(algo)
	if err != nil {
		return
	}
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return
	}
	sum = suite.HashFunc(data)
	if truncLen > 0 && truncLen < len(sum) {
		sum = sum[:truncLen]
	}
	return
}

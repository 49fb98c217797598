// Copyright (c) 2021 Oasis Labs Inc. All rights reserved.
// Copyright (c) 2021 Yawning Angel. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
// 1. Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright
// notice, this list of conditions and the following disclaimer in the
// documentation and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS
// IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED
// TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A
// PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED
// TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR
// PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF
// LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
// NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
// SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// curvetool is a small command-line driver exercising key generation,
// signing, verification, and Diffie-Hellman derivation across the
// schemes this module implements.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "curvetool",
		Usage: "generate keys, sign, verify, and derive shared secrets",
		Commands: []*cli.Command{
			{
				Name:   "keygen",
				Usage:  "generate a fresh private/public key pair",
				Flags:  []cli.Flag{schemeFlag},
				Action: keygenAction,
			},
			{
				Name:   "sign",
				Usage:  "sign a hex-encoded message",
				Flags:  []cli.Flag{schemeFlag, keyFlag, messageFlag},
				Action: signAction,
			},
			{
				Name:   "verify",
				Usage:  "verify a hex-encoded signature",
				Flags:  []cli.Flag{schemeFlag, pubFlag, messageFlag, sigFlag},
				Action: verifyAction,
			},
			{
				Name:   "derive",
				Usage:  "derive a shared secret from a private key and a peer public key",
				Flags:  []cli.Flag{schemeFlag, keyFlag, peerFlag},
				Action: deriveAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

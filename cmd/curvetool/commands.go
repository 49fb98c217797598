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

package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/nijynot/bcrypto/ecdsa"
	"github.com/nijynot/bcrypto/eddsa"
	"github.com/nijynot/bcrypto/schnorr"
	"github.com/nijynot/bcrypto/x25519"
	"github.com/nijynot/bcrypto/x448"
	"github.com/urfave/cli/v2"
)

var schemeFlag = &cli.StringFlag{
	Name:     "scheme",
	Usage:    "ed25519, ed448, ed1174, schnorr, ecdsa-p256, ecdsa-p384, ecdsa-p521, ecdsa-secp256k1, x25519, x448",
	Required: true,
}

var keyFlag = &cli.StringFlag{
	Name:     "key",
	Usage:    "hex-encoded private key (seed/scalar/clamped scalar, depending on scheme)",
	Required: true,
}

var pubFlag = &cli.StringFlag{
	Name:     "pub",
	Usage:    "hex-encoded public key",
	Required: true,
}

var peerFlag = &cli.StringFlag{
	Name:     "peer",
	Usage:    "hex-encoded peer public key, for derive",
	Required: true,
}

var messageFlag = &cli.StringFlag{
	Name:     "message",
	Usage:    "hex-encoded message to sign or verify",
	Required: true,
}

var sigFlag = &cli.StringFlag{
	Name:     "sig",
	Usage:    "hex-encoded signature to verify",
	Required: true,
}

func decodeHexFlag(c *cli.Context, name string) ([]byte, error) {
	b, err := hex.DecodeString(c.String(name))
	if err != nil {
		return nil, fmt.Errorf("curvetool: --%s is not valid hex: %w", name, err)
	}
	return b, nil
}

func keygenAction(c *cli.Context) error {
	scheme := c.String(schemeFlag.Name)

	switch scheme {
	case "ed25519", "ed448", "ed1174":
		ec, err := eddsa.NewContext(eddsaCurveID(scheme))
		if err != nil {
			return err
		}
		k, err := ec.GenerateKey()
		if err != nil {
			return err
		}
		fmt.Printf("private: %s\npublic:  %s\n", hex.EncodeToString(k.Seed), hex.EncodeToString(k.Public))
		return nil
	case "schnorr":
		sc, err := schnorr.NewContext("SECP256K1")
		if err != nil {
			return err
		}
		d, pub, err := sc.GenerateKey()
		if err != nil {
			return err
		}
		fmt.Printf("private: %s\npublic:  %s\n", hex.EncodeToString(d.Bytes()), hex.EncodeToString(pub))
		return nil
	case "x25519":
		priv, err := x25519.GenerateKey()
		if err != nil {
			return err
		}
		pub, err := x25519.PublicKey(priv)
		if err != nil {
			return err
		}
		fmt.Printf("private: %s\npublic:  %s\n", hex.EncodeToString(priv), hex.EncodeToString(pub))
		return nil
	case "x448":
		priv, err := x448.GenerateKey()
		if err != nil {
			return err
		}
		pub, err := x448.PublicKey(priv)
		if err != nil {
			return err
		}
		fmt.Printf("private: %s\npublic:  %s\n", hex.EncodeToString(priv), hex.EncodeToString(pub))
		return nil
	}

	if id, ok := ecdsaCurveIDs[scheme]; ok {
		ec, err := ecdsa.NewContext(id)
		if err != nil {
			return err
		}
		d, Q, err := ec.GenerateKey()
		if err != nil {
			return err
		}
		fmt.Printf("private: %s\npublic:  %s\n", hex.EncodeToString(d.Bytes()), hex.EncodeToString(Q.EncodeCompressed()))
		return nil
	}
	return errUnknownScheme(scheme)
}

func eddsaCurveID(scheme string) string {
	switch scheme {
	case "ed25519":
		return "ED25519"
	case "ed448":
		return "ED448"
	default:
		return "ED1174"
	}
}

func signAction(c *cli.Context) error {
	scheme := c.String(schemeFlag.Name)
	priv, err := decodeHexFlag(c, keyFlag.Name)
	if err != nil {
		return err
	}
	msg, err := decodeHexFlag(c, messageFlag.Name)
	if err != nil {
		return err
	}

	switch scheme {
	case "ed25519", "ed448", "ed1174":
		ec, err := eddsa.NewContext(eddsaCurveID(scheme))
		if err != nil {
			return err
		}
		k, err := ec.NewKeyFromSeed(priv)
		if err != nil {
			return err
		}
		sig := ec.Sign(k, msg)
		fmt.Println(hex.EncodeToString(sig))
		return nil
	case "schnorr":
		sc, err := schnorr.NewContext("SECP256K1")
		if err != nil {
			return err
		}
		d, ok := sc.Sc.Import(priv)
		if !ok {
			return fmt.Errorf("curvetool: --key is out of range for secp256k1")
		}
		aux := make([]byte, 32)
		if _, err := rand.Read(aux); err != nil {
			return err
		}
		sig, err := sc.Sign(d, msg, aux)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(sig))
		return nil
	}

	if id, ok := ecdsaCurveIDs[scheme]; ok {
		ec, err := ecdsa.NewContext(id)
		if err != nil {
			return err
		}
		d, ok := ec.Sc.Import(priv)
		if !ok {
			return fmt.Errorf("curvetool: --key is out of range for %s", id)
		}
		h := sha256.Sum256(msg)
		sig, err := ec.SignDER(d, h[:])
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(sig))
		return nil
	}
	return fmt.Errorf("curvetool: scheme %q does not support sign (try derive)", scheme)
}

func verifyAction(c *cli.Context) error {
	scheme := c.String(schemeFlag.Name)
	pub, err := decodeHexFlag(c, pubFlag.Name)
	if err != nil {
		return err
	}
	msg, err := decodeHexFlag(c, messageFlag.Name)
	if err != nil {
		return err
	}
	sig, err := decodeHexFlag(c, sigFlag.Name)
	if err != nil {
		return err
	}

	switch scheme {
	case "ed25519", "ed448", "ed1174":
		ec, err := eddsa.NewContext(eddsaCurveID(scheme))
		if err != nil {
			return err
		}
		if err := ec.Verify(pub, msg, sig); err != nil {
			fmt.Println("invalid:", err)
			return cli.Exit("", 1)
		}
		fmt.Println("valid")
		return nil
	case "schnorr":
		sc, err := schnorr.NewContext("SECP256K1")
		if err != nil {
			return err
		}
		if !sc.Verify(pub, msg, sig) {
			fmt.Println("invalid")
			return cli.Exit("", 1)
		}
		fmt.Println("valid")
		return nil
	}

	if id, ok := ecdsaCurveIDs[scheme]; ok {
		ec, err := ecdsa.NewContext(id)
		if err != nil {
			return err
		}
		Q, err := ec.DecodeCompressed(pub)
		if err != nil {
			return err
		}
		h := sha256.Sum256(msg)
		if !ec.VerifyDER(Q, h[:], sig) {
			fmt.Println("invalid")
			return cli.Exit("", 1)
		}
		fmt.Println("valid")
		return nil
	}
	return errUnknownScheme(scheme)
}

func deriveAction(c *cli.Context) error {
	scheme := c.String(schemeFlag.Name)
	priv, err := decodeHexFlag(c, keyFlag.Name)
	if err != nil {
		return err
	}
	peer, err := decodeHexFlag(c, peerFlag.Name)
	if err != nil {
		return err
	}

	switch scheme {
	case "x25519":
		shared, err := x25519.Derive(priv, peer)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(shared))
		return nil
	case "x448":
		shared, err := x448.Derive(priv, peer)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(shared))
		return nil
	}

	if id, ok := ecdsaCurveIDs[scheme]; ok {
		ec, err := ecdsa.NewContext(id)
		if err != nil {
			return err
		}
		d, ok := ec.Sc.Import(priv)
		if !ok {
			return fmt.Errorf("curvetool: --key is out of range for %s", id)
		}
		Q, err := ec.DecodeCompressed(peer)
		if err != nil {
			return err
		}
		shared, err := ec.Derive(d, Q)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(shared))
		return nil
	}
	return fmt.Errorf("curvetool: scheme %q does not support derive", scheme)
}

// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ticketcli

import (
	"encoding/hex"
	"encoding/json"
	"github.com/orbs-network/ticketchain/crypto/digest"
	"github.com/orbs-network/ticketchain/crypto/encoding"
	"github.com/orbs-network/ticketchain/crypto/keys"
	"github.com/orbs-network/ticketchain/crypto/signature"
	"github.com/orbs-network/ticketchain/jsonapi"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
)

const DEFAULT_KEY_FILE = "./.ticketKeys"

type signingKey interface {
	Signer() protocol.Signer
	Sign(data []byte) ([]byte, error)
	PrivateKeyHex() string
}

type ed25519Key struct {
	*keys.Ed25519KeyPair
}

func (k *ed25519Key) Signer() protocol.Signer {
	return protocol.Signer{Scheme: protocol.SIGNER_SCHEME_EDDSA, PublicKey: k.PublicKey()}
}

func (k *ed25519Key) Sign(data []byte) ([]byte, error) {
	return signature.SignEd25519(k.PrivateKey(), data)
}

type ecdsaKey struct {
	*keys.EcdsaSecp256K1KeyPair
}

func (k *ecdsaKey) Signer() protocol.Signer {
	return protocol.Signer{Scheme: protocol.SIGNER_SCHEME_ECDSA_SECP256K1, PublicKey: k.PublicKey()}
}

func (k *ecdsaKey) Sign(data []byte) ([]byte, error) {
	return signature.SignEcdsaSecp256K1(k.PrivateKey(), data)
}

type keyFile struct {
	Scheme     string `json:"scheme"`
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
	Address    string `json:"address"`
}

func generateKey(scheme string) (signingKey, error) {
	switch scheme {
	case jsonapi.SIGNER_SCHEME_EDDSA:
		pair, err := keys.GenerateEd25519Key()
		if err != nil {
			return nil, err
		}
		return &ed25519Key{pair}, nil
	case jsonapi.SIGNER_SCHEME_ECDSA_SECP256K1:
		pair, err := keys.GenerateEcdsaSecp256K1Key()
		if err != nil {
			return nil, err
		}
		return &ecdsaKey{pair}, nil
	}
	return nil, errors.Errorf("unknown signer scheme '%s'", scheme)
}

func keyFromPrivateKeyHex(scheme string, privateKeyHex string) (signingKey, error) {
	switch scheme {
	case jsonapi.SIGNER_SCHEME_EDDSA:
		pair, err := keys.Ed25519KeyPairFromPrivateKeyHex(privateKeyHex)
		if err != nil {
			return nil, err
		}
		return &ed25519Key{pair}, nil
	case jsonapi.SIGNER_SCHEME_ECDSA_SECP256K1:
		raw, err := hex.DecodeString(privateKeyHex)
		if err != nil {
			return nil, errors.Wrap(err, "private key is not valid hex")
		}
		pair, err := keys.EcdsaSecp256K1KeyPairFromPrivateKey(raw)
		if err != nil {
			return nil, err
		}
		return &ecdsaKey{pair}, nil
	}
	return nil, errors.Errorf("unknown signer scheme '%s'", scheme)
}

func writeKeyFile(path string, scheme string, key signingKey) (*keyFile, error) {
	address, err := digest.CalcClientAddressOfSigner(key.Signer())
	if err != nil {
		return nil, err
	}
	content := &keyFile{
		Scheme:     scheme,
		PublicKey:  hex.EncodeToString(key.Signer().PublicKey),
		PrivateKey: key.PrivateKeyHex(),
		Address:    encoding.EncodeAddress(address),
	}
	raw, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := ioutil.WriteFile(path, raw, 0600); err != nil {
		return nil, errors.Wrapf(err, "could not write key file %s", path)
	}
	return content, nil
}

func readKeyFile(path string) (signingKey, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "could not find key file %s, run keygen first", path)
	}
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := &keyFile{}
	if err := json.Unmarshal(raw, content); err != nil {
		return nil, errors.Wrapf(err, "key file %s is corrupt", path)
	}
	return keyFromPrivateKeyHex(content.Scheme, content.PrivateKey)
}

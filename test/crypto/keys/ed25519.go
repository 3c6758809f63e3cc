// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package keys

import (
	"github.com/orbs-network/ticketchain/crypto/keys"
)

// ed25519 seeds, the key pair is derived so public and private halves always agree
var ed25519Seeds = []string{
	"93e919986a22477fda016789cca30cb841a135650938714f85f0000a65076bd4",
	"3b24b5f9e6b1371c3b5de2e402a96930eeafe52111bb4a1b003e5ecad3fab538",
	"2c72df84be2b994c32a3f4ded0eab901debd3f3e13721a59eed00fbd1da4cc00",
	"163987afcee69969cae3528161d84e32f76b09bbf0dd77dd704e5cb915c7d56f",
	"74b63e4f6f908ac42c1b4c7b3b6028c7b665df4375c1acbf4dce2b1b91aefc5b",
	"d9fae84f80b842f57770a9ae67c7eb58ce502eb32502d43ddec5da115ccd2e21",
	"c7c2579fb128bf1d687081600f171060d95da22543920ea3490d8e71980babe9",
	"0d953392b90e5cf5f0162cb289ff1b77a358921201aa5c91c902b38aa22a1878",
	"57249e0b586083a60df94044971416cb9fdd373855aac9e04bceb4c96e53559e",
	"f1c41ba8a1d78f7cdc4f4ff23f3b736e30c630085697d6503e16ac899646f5ab",
}

func Ed25519KeyPairForTests(setIndex int) *keys.Ed25519KeyPair {
	if setIndex >= len(ed25519Seeds) {
		return nil
	}

	kp, err := keys.Ed25519KeyPairFromPrivateKeyHex(ed25519Seeds[setIndex])
	if err != nil {
		return nil
	}
	return kp
}

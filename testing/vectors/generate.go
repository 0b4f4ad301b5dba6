package vectors

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// FormatVersion is the version of the vector file layout.
const FormatVersion = "1"

// Default returns the published vector set.
func Default() *TestVectorFile {
	return &TestVectorFile{
		Version:     FormatVersion,
		Description: "ICON JSON-RPC canonical encoding, SHA3-256 hashing and hx address derivation",
		Keys:        keyVectors(),
		Encodings:   encodingVectors(),
		Amounts:     amountVectors(),
		Signatures:  signatureVectors(),
	}
}

// MarshalFile renders the vector set as indented JSON for other implementations.
func MarshalFile(f *TestVectorFile) ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal test vectors: %w", err)
	}
	return data, nil
}

// ParseFile decodes a vector file produced by MarshalFile.
func ParseFile(data []byte) (*TestVectorFile, error) {
	var f TestVectorFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}
	if f.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported test vector version %q", f.Version)
	}
	return &f, nil
}

func keyVectors() []KeyVector {
	return []KeyVector{
		{
			Name:          "published_wallet",
			PrivateKeyHex: "f4ade1ff528c9e0bf10d35909e3486ef6ce88df8a183fc1cc2c65bfa9a53d3fd",
			PublicKeyHex:  "be29019c2385304bd4efc1085eb1abd01ef2732366b1fa881f5b7daabd419f0c152c3fabd108488a5bf420340800c231ace12d76e559b9a6683f725e55c5d370",
			Address:       "hxb14e0c751899676a1a4e655a34063b42260f844b",
		},
		{
			Name:          "testnet_token_holder",
			PrivateKeyHex: "3468ea815d8896ef4552f10768caf2660689b965975c3ec2c1f5fe84bc3a77a5",
			PublicKeyHex:  "c818b3d2ddeb6f29aaba7a85f113e057fb6ad3c522710d9831ef9501d477dff4c29b5585ce412edaf6702faa13b8ab78fcf166b853dcbaf3fed7eefbec0461ce",
			Address:       "hx8dc6ae3d93e60a2dddf80bfc5fb1cd16a2bf6160",
		},
		{
			Name:          "scalar_one",
			PrivateKeyHex: "0000000000000000000000000000000000000000000000000000000000000001",
			PublicKeyHex:  "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
			Address:       "hx0502987e630ea7ebb2bf1d84a65a727109385bcf",
		},
	}
}

func encodingVectors() []EncodingVector {
	return []EncodingVector{
		{
			Name:   "icx_transfer",
			Method: "icx_sendTransaction",
			Params: json.RawMessage(`{
				"version": "0x3",
				"from": "hxbe258ceb872e08851f1f59694dac2558708ece11",
				"to": "hx5bfdb090f43a808005ffc27c25b213145e80b7cd",
				"value": "0xde0b6b3a7640000",
				"stepLimit": "0x12345",
				"timestamp": "0x563a6cf330136",
				"nid": "0x1",
				"nonce": "0x1"
			}`),
			PreImage: "icx_sendTransaction.from.hxbe258ceb872e08851f1f59694dac2558708ece11.nid.0x1.nonce.0x1.stepLimit.0x12345.timestamp.0x563a6cf330136.to.hx5bfdb090f43a808005ffc27c25b213145e80b7cd.value.0xde0b6b3a7640000.version.0x3",
			HashHex:  "f0c68a4f588233d722fff7b5a738ffa6b56ad4cb62ad6bc9fb3e5facb0c25059",
		},
		{
			Name:   "irc2_transfer_call",
			Method: "icx_sendTransaction",
			Params: json.RawMessage(`{
				"to": "cx273548dff8bb77ffaac5a342c4c04aeae0bc48fa",
				"from": "hx8dc6ae3d93e60a2dddf80bfc5fb1cd16a2bf6160",
				"version": "0x3",
				"nid": "0x2",
				"nonce": "0x1",
				"stepLimit": "0x186a00",
				"timestamp": "0x5f1a2b3c4d5e6",
				"dataType": "call",
				"data": {
					"params": {"_value": "0xaaeec63de27c8000", "_to": "hx8dc6ae3d93e60a2dddf80bfc5fb1cd16a2bf6160"},
					"method": "transfer"
				}
			}`),
			PreImage: "icx_sendTransaction.data.{method.transfer.params.{_to.hx8dc6ae3d93e60a2dddf80bfc5fb1cd16a2bf6160._value.0xaaeec63de27c8000}}.dataType.call.from.hx8dc6ae3d93e60a2dddf80bfc5fb1cd16a2bf6160.nid.0x2.nonce.0x1.stepLimit.0x186a00.timestamp.0x5f1a2b3c4d5e6.to.cx273548dff8bb77ffaac5a342c4c04aeae0bc48fa.version.0x3",
			HashHex:  "6d37b1aca024c22563d50b8eb88ded1d6d0cadc465a528a19bbf190841666e60",
		},
		{
			Name:     "no_params",
			Method:   "icx_getLastBlock",
			Params:   json.RawMessage(`null`),
			PreImage: "icx_getLastBlock.",
		},
		{
			Name:     "escaped_string",
			Method:   "icx_call",
			Params:   json.RawMessage(`{"data": "a.b\\c{d}[e]"}`),
			PreImage: `icx_call.data.a\.b\\c\{d\}\[e\]`,
		},
		{
			Name:     "null_and_array",
			Method:   "icx_call",
			Params:   json.RawMessage(`{"list": ["x", null, [], {}], "flag": true}`),
			PreImage: `icx_call.flag.true.list.[x.\0.[].{}]`,
		},
		{
			Name:     "signature_excluded",
			Method:   "icx_sendTransaction",
			Params:   json.RawMessage(`{"nid": "0x1", "signature": "c2lnbmF0dXJl"}`),
			PreImage: "icx_sendTransaction.nid.0x1",
		},
	}
}

func amountVectors() []AmountVector {
	return []AmountVector{
		{ICX: "7533727.039631672546337039", Hex: "0x63b5429420c741b16a10f"},
		{ICX: "12.317", Hex: "0xaaeec63de27c8000"},
		{ICX: "1", Hex: "0xde0b6b3a7640000"},
		{ICX: "0", Hex: "0x0"},
	}
}

// Key returns the key vector with the given name.
func (f *TestVectorFile) Key(name string) (KeyVector, bool) {
	for _, k := range f.Keys {
		if k.Name == name {
			return k, true
		}
	}
	return KeyVector{}, false
}

func signatureVectors() []SignatureVector {
	transferHash := mustHex("f0c68a4f588233d722fff7b5a738ffa6b56ad4cb62ad6bc9fb3e5facb0c25059")
	irc2Hash := mustHex("6d37b1aca024c22563d50b8eb88ded1d6d0cadc465a528a19bbf190841666e60")
	return []SignatureVector{
		{
			Name:      "published_wallet_transfer",
			Key:       "published_wallet",
			Digest:    transferHash,
			Signature: "KgP3T1AcLvRIlAyqwa7GbCESpIiZFq8NT4xVv3nPqxl6o6yuoWcQerTVeK6K5K1CSE3pDG3QVB3+YtdspLnOMQA=",
		},
		{
			Name:      "scalar_one_transfer",
			Key:       "scalar_one",
			Digest:    transferHash,
			Signature: "gcbICdxBSFU7Et6NRAbU+yJc8DHLqBxcV2Itn22PgCJAdrItX5q50h7Yn0QymdKQ0ns+0LOUkcWvbHZ7N/RQAwE=",
		},
		{
			Name:      "testnet_token_holder_irc2_transfer",
			Key:       "testnet_token_holder",
			Digest:    irc2Hash,
			Signature: "da3+qlkp4V62qEBDOfMa7TDH/qj2MRo0WrPeqPyj4mpXbyccuYRRMHmTotF1uQICxH1HLMyl6m3sw73Z+h86WAA=",
		},
	}
}

func mustHex(s string) HexBytes {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

package stego

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/reedsolomon"
)

// Reed-Solomon shard layout for the optional payload armor.
const (
	fecDataShards   = 4
	fecParityShards = 2
)

// armorPayload wraps the message bytes as [4-byte big-endian length, data]
// split into data+parity shards joined in order. The armored bytes are
// framed and embedded like any other payload, so the wire conventions are
// unchanged; only the payload contents grow.
func armorPayload(data []byte) ([]byte, error) {
	enc, err := reedsolomon.New(fecDataShards, fecParityShards)
	if err != nil {
		return nil, err
	}

	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, uint32(len(data)))
	payload := append(header, data...)

	shards, err := enc.Split(payload)
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(shards); err != nil {
		return nil, err
	}

	var out []byte
	for _, shard := range shards {
		out = append(out, shard...)
	}
	return out, nil
}

// unarmorPayload reverses armorPayload, reconstructing from parity when
// verification fails.
func unarmorPayload(data []byte) ([]byte, error) {
	enc, err := reedsolomon.New(fecDataShards, fecParityShards)
	if err != nil {
		return nil, err
	}

	shards, err := enc.Split(data)
	if err != nil {
		return nil, fmt.Errorf("split armored payload: %w", err)
	}
	if ok, _ := enc.Verify(shards); !ok {
		if err := enc.Reconstruct(shards); err != nil {
			return nil, fmt.Errorf("reconstruct armored payload: %w", err)
		}
	}

	var joined []byte
	for i := 0; i < fecDataShards; i++ {
		joined = append(joined, shards[i]...)
	}

	if len(joined) < 4 {
		return nil, errors.New("armored payload too short")
	}
	length := binary.BigEndian.Uint32(joined[:4])
	if uint32(len(joined)) < 4+length {
		return nil, errors.New("armored payload length mismatch")
	}
	return joined[4 : 4+length], nil
}

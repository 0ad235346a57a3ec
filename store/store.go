package store

import (
	"context"
	"encoding/json"
)

// Well-known keys. Each holds one JSON document; last write wins.
const (
	KeyNatalChart   = "natalChart"
	KeyUserChart    = "userChart"
	KeyUserProfile  = "userProfile"
	KeyBirthProfile = "birthProfile"
	KeyFriends      = "friends"
	KeySynastry     = "synastry"
	KeyUserID       = "userId"
	KeyToken        = "token"
)

// SessionKeys are the keys wiped by an explicit logout/reset.
var SessionKeys = []string{
	KeyNatalChart, KeyUserChart, KeyUserProfile, KeyBirthProfile,
	KeyFriends, KeySynastry, KeyUserID, KeyToken,
}

// SchemaVersion tags every persisted record. A record written under a
// different version reads back as absent instead of decoding into a stale
// shape.
const SchemaVersion = 1

// Store is the keyed persistence the views share. Implementations are
// injectable so tests can run against the in-memory backend. Writes are
// last-write-wins with no coordination; the workflow is single-user and
// low-contention.
type Store interface {
	Save(ctx context.Context, key string, value any) error
	Load(ctx context.Context, key string, dest any) (bool, error)
	Clear(ctx context.Context, key string) error
}

type envelope struct {
	V    int             `json:"v"`
	Data json.RawMessage `json:"data"`
}

func encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{V: SchemaVersion, Data: data})
}

func decodeRecord(raw []byte, dest any) (bool, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false, err
	}
	if env.V != SchemaVersion {
		return false, nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return false, err
	}
	return true, nil
}

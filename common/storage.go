package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// GetList returns deserialized list of script hashes stored by key or an
// empty list.
func GetList(ctx storage.Context, key any) []interop.Hash160 {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).([]interop.Hash160)
	}

	return []interop.Hash160{}
}

// AppendToList adds h to the end of the list stored by key.
func AppendToList(ctx storage.Context, key any, h interop.Hash160) {
	list := GetList(ctx, key)
	list = append(list, h)
	SetSerialized(ctx, key, list)
}

// GetInt returns integer stored by key or 0 if there is none.
func GetInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

// PutInt stores v by key deleting the item when v is zero.
func PutInt(ctx storage.Context, key any, v int) {
	if v == 0 {
		storage.Delete(ctx, key)
		return
	}

	storage.Put(ctx, key, v)
}

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

package storage

import (
	"reflect"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Set("drsparkle:users", []byte(`{}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := store.Get("drsparkle:users")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() reported missing key after Set()")
	}
	if string(value) != `{}` {
		t.Errorf("Get() = %q, want %q", value, `{}`)
	}

	_, ok, err = store.Get("drsparkle:missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() reported presence for a missing key")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Set("drsparkle:history:bobby", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Delete("drsparkle:history:bobby"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := store.Get("drsparkle:history:bobby"); ok {
		t.Error("key still present after Delete()")
	}

	// Deleting a missing key is a no-op
	if err := store.Delete("drsparkle:history:bobby"); err != nil {
		t.Errorf("Delete() of missing key returned error: %v", err)
	}
}

func TestMemoryStoreKeys(t *testing.T) {
	store := NewMemoryStore()

	seed := map[string]string{
		"drsparkle:users":         `{}`,
		"drsparkle:history:alice": `[]`,
		"drsparkle:history:bobby": `[]`,
		"unrelated:key":           `x`,
	}
	for key, value := range seed {
		if err := store.Set(key, []byte(value)); err != nil {
			t.Fatalf("Set(%q) error = %v", key, err)
		}
	}

	keys, err := store.Keys("drsparkle:")
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}

	want := []string{
		"drsparkle:history:alice",
		"drsparkle:history:bobby",
		"drsparkle:users",
	}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

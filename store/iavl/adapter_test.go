package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/store"
	"github.com/iov-one/claimable/weavetest/assert"
)

func makeCommitStore(t testing.TB) (string, func()) {
	t.Helper()
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	assert.Nil(t, err)
	return tmpDir, func() { os.RemoveAll(tmpDir) }
}

func assertGetHas(t testing.TB, kv store.ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

// TestCacheGetSet does basic sanity checks on our cache
func TestCacheGetSet(t *testing.T) {
	base := MockCommitStore()
	assert.Nil(t, base.LoadLatestVersion())

	k, v := []byte("french"), []byte("fry")
	assertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	assertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	assertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	assert.Nil(t, cache.Set(k2, v2))
	assertGetHas(t, cache, k2, v2, true)
	assertGetHas(t, base, k2, nil, false)

	// until written to the base layer
	assert.Nil(t, cache.Write())
	assertGetHas(t, base, k2, v2, true)

	// a discarded cache leaves no trace
	c2 := base.CacheWrap()
	assert.Nil(t, c2.Delete(k))
	assert.Nil(t, c2.Set([]byte("gone"), []byte("soon")))
	c2.Discard()
	assertGetHas(t, base, k, v, true)
	assertGetHas(t, base, []byte("gone"), nil, false)
}

func TestCommitVersions(t *testing.T) {
	s := MockCommitStore()
	assert.Nil(t, s.LoadLatestVersion())

	empty := s.LatestVersion()
	assert.Equal(t, int64(0), empty.Version)

	assert.Nil(t, s.Set([]byte("a"), []byte("1")))
	first, err := s.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), first.Version)
	assert.Equal(t, first, s.LatestVersion())

	assert.Nil(t, s.Delete([]byte("a")))
	second, err := s.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(2), second.Version)
	if string(first.Hash) == string(second.Hash) {
		t.Fatal("hash must change with content")
	}
}

func TestCommitStoreDurability(t *testing.T) {
	dir, cleanup := makeCommitStore(t)
	defer cleanup()

	s, err := NewCommitStore(dir, "state")
	assert.Nil(t, err)
	assert.Nil(t, s.LoadLatestVersion())

	assert.Nil(t, s.Set([]byte("kept"), []byte("yes")))
	id, err := s.Commit()
	assert.Nil(t, err)

	// uncommitted data is lost on close
	assert.Nil(t, s.Set([]byte("lost"), []byte("yes")))
	assert.Nil(t, s.Close())

	reopened, err := NewCommitStore(dir, "state")
	assert.Nil(t, err)
	defer reopened.Close()
	assert.Nil(t, reopened.LoadLatestVersion())
	assert.Equal(t, id, reopened.LatestVersion())
	assertGetHas(t, reopened, []byte("kept"), []byte("yes"), true)
	assertGetHas(t, reopened, []byte("lost"), nil, false)
}

func TestCommitStoreRejectsNil(t *testing.T) {
	s := MockCommitStore()
	assert.Nil(t, s.LoadLatestVersion())

	if err := s.Set(nil, []byte("x")); !errors.ErrDatabase.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	if err := s.Set([]byte("x"), nil); !errors.ErrDatabase.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	if _, err := s.Get(nil); !errors.ErrDatabase.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

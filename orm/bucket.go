/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets. Each bucket
contains only one type of object, addressed by its primary key.
*/
package orm

import (
	"fmt"
	"regexp"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Bucket is a prefixed subspace of the DB.
type Bucket struct {
	name   string
	prefix []byte
}

// NewBucket creates a bucket to store data. It panics if the name is not
// 3 to 10 lower case letters.
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the bucket name.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consequetive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

/*
Package codec provides protobuf wire format encoding helpers for the models
and messages of this application.

Each persisted type implements Marshal and Unmarshal by writing its fields
with an Encoder and reading them back with a Decoder. Field numbers are stable
and must never be reused. Unknown fields are skipped while decoding, which
allows adding new fields without a migration.

The schema of every package is declared in its codec.proto file. Keep the
Marshal and Unmarshal methods in sync with it.
*/
package codec

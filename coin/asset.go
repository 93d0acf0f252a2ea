package coin

import (
	"regexp"

	"github.com/iov-one/claimable/errors"
)

// isAssetID is the RegExp to ensure valid asset identifiers.
var isAssetID = regexp.MustCompile(`^[a-zA-Z0-9:_\-\.]{1,64}$`).MatchString

// AssetID is an opaque identifier of a fungible asset. Nothing is assumed
// about its content beyond it being a short printable string.
type AssetID string

// Validate returns an error if the identifier is malformed.
func (id AssetID) Validate() error {
	if id == "" {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	if !isAssetID(string(id)) {
		return errors.Wrapf(errors.ErrInput, "asset id %q", string(id))
	}
	return nil
}

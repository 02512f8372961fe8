package kernel

import (
	"encoding/base64"

	"fulfillment/internal/pkg/errs"
)

// PageToken is a value object that marks a position in a paged listing of orders.
// Listings of new packaging requests and new deliveries scan records in OrderID
// order; a PageToken carries the last OrderID the caller has already seen so the
// next page can resume right after it.
//
// The zero value is meaningful and denotes the start of the listing. On the wire
// the token is an opaque base64 string so callers cannot depend on its layout.
//
// Example usage:
//
//	token, err := kernel.PageTokenFromString(nextToken)
//	if err != nil {
//	    // handle error
//	}
//	if token.IsZero() {
//	    // first page
//	}
type PageToken struct {
	lastOrderID OrderID
}

// NewPageToken creates a token pointing right after the given OrderID.
// Returns an error if the identifier is not properly constructed.
func NewPageToken(lastSeen OrderID) (PageToken, error) {
	if err := lastSeen.Validate(); err != nil {
		return PageToken{}, err
	}
	return PageToken{lastOrderID: lastSeen}, nil
}

// PageTokenFromString decodes a token received from a caller.
// An empty string decodes to the zero token, meaning the listing starts from
// the beginning. Any other value must be a token previously produced by
// String; otherwise a ValueIsInvalidError is returned.
func PageTokenFromString(s string) (PageToken, error) {
	if s == "" {
		return PageToken{}, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return PageToken{}, errs.NewValueIsInvalidErrorWithCause("nextToken", err)
	}

	id, err := OrderIDFromString(string(raw))
	if err != nil {
		return PageToken{}, errs.NewValueIsInvalidErrorWithCause("nextToken", err)
	}

	return PageToken{lastOrderID: id}, nil
}

// IsZero reports whether the token denotes the start of the listing.
func (t PageToken) IsZero() bool {
	return t.lastOrderID == OrderID{}
}

// LastOrderID returns the identifier the listing should resume after.
// The result is only meaningful when IsZero reports false.
func (t PageToken) LastOrderID() OrderID {
	return t.lastOrderID
}

// String encodes the token for the wire. The zero token encodes to the empty
// string; any other token round-trips through PageTokenFromString.
func (t PageToken) String() string {
	if t.IsZero() {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString([]byte(t.lastOrderID.String()))
}

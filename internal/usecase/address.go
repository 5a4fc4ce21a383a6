package usecase

import (
	"strings"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

const addressSeparator = ", "

// NormalizeAddress flattens a shipping address into a single display line.
// Absent components are skipped; a nil address yields an empty string.
func NormalizeAddress(addr *model.Address) string {
	if addr == nil {
		return ""
	}

	parts := make([]string, 0, 6)
	for _, component := range []*string{
		addr.Line1,
		addr.Line2,
		addr.City,
		addr.State,
		addr.PostalCode,
		addr.Country,
	} {
		if component != nil {
			parts = append(parts, *component)
		}
	}
	return strings.Join(parts, addressSeparator)
}

package carrier

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/atlasgoods/fulfillment-service/internal/geo"
)

const trackingPrefix = "ATS"

// TrackingCode renders the carrier shipment id the way it is printed on
// labels: fixed prefix, zero-padded to nine digits.
func TrackingCode(shippingID int64) string {
	return fmt.Sprintf("%s%09d", trackingPrefix, shippingID)
}

// SortCode derives the routing code printed on labels from the destination
// city and the order id. It is computed locally and reproducibly, never
// returned by the carrier: two letters of the city plus a 3-digit modulus of
// the order id hash.
func SortCode(city, orderID string) string {
	prefix := cityPrefix(city)

	h := fnv.New32a()
	h.Write([]byte(orderID))
	return fmt.Sprintf("%s%03d", prefix, h.Sum32()%1000)
}

func cityPrefix(city string) string {
	letters := make([]rune, 0, 2)
	for _, r := range geo.Fold(city) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
			if len(letters) == 2 {
				break
			}
		}
	}
	if len(letters) < 2 {
		return "XX"
	}
	return strings.ToUpper(string(letters))
}

package sandbox

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// HashCreateInput fingerprints the payload a unique_request_id was first used with.
func HashCreateInput(in CreateInput, amount decimal.Decimal) string {
	src := strings.TrimSpace(in.SourceAccountID)
	dst := strings.TrimSpace(in.DestinationAccountID)
	cur := strings.ToUpper(strings.TrimSpace(in.Currency))
	reason := strings.TrimSpace(in.Reason)

	payload := fmt.Sprintf("%s|%s|%s|%s|%s", src, dst, amount.String(), cur, reason)

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

package transfer

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxMemoLength = 200

// validateAmount enforces the amount policy: present, positive, at most two
// fractional digits, inside [MinAmount, MaxAmount]. Range and scale are
// checked before any account state so an out-of-policy amount always fails
// the same way regardless of balances.
func (e *Engine) validateAmount(amount decimal.Decimal) error {
	if amount.IsZero() || amount.IsNegative() {
		return E(KindInvalidAmount, "amount must be positive")
	}
	if amount.Exponent() < -2 {
		return E(KindInvalidAmount, "amount cannot have more than 2 decimal places")
	}
	if amount.LessThan(e.policy.MinAmount) {
		return E(KindInvalidAmount, "amount is below the minimum of "+e.policy.MinAmount.StringFixed(2))
	}
	if amount.GreaterThan(e.policy.MaxAmount) {
		return E(KindInvalidAmount, "amount exceeds the maximum of "+e.policy.MaxAmount.StringFixed(2))
	}
	return nil
}

// sanitizeMemo length-caps the memo and strips characters that are dangerous
// in downstream rendering or query contexts before persistence.
func sanitizeMemo(memo string) string {
	if len(memo) > maxMemoLength {
		// Never cut through a multibyte rune; back up to the last boundary.
		cut := maxMemoLength
		for cut > 0 && !utf8.RuneStart(memo[cut]) {
			cut--
		}
		memo = memo[:cut]
	}
	memo = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '\'', '&':
			return -1
		}
		return r
	}, memo)
	return strings.TrimSpace(memo)
}

package models

import (
	"fmt"
	"strings"

	"github.com/ghuser/stitchstock/services/inventory/domain"
)

// Action is the kind of a stock-affecting event.
type Action string

const (
	ActionInitialStock Action = "INITIAL_STOCK"
	ActionStockIn      Action = "STOCK_IN"
	ActionStockOut     Action = "STOCK_OUT"
)

// ParseAction maps a raw scan action to its canonical Action.
// Accepted aliases: IN → STOCK_IN; OUT, SALE → STOCK_OUT. SALE is ledgered
// as a plain STOCK_OUT; the scanned alias is not preserved.
func ParseAction(raw string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "IN", "STOCK_IN":
		return ActionStockIn, nil
	case "OUT", "SALE", "STOCK_OUT":
		return ActionStockOut, nil
	default:
		return "", fmt.Errorf("%w: %q (use IN or OUT)", domain.ErrInvalidAction, raw)
	}
}

// Direction returns +1 for actions that add stock and -1 for those that
// remove it.
func (a Action) Direction() int {
	if a == ActionStockOut {
		return -1
	}
	return 1
}

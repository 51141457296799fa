package parse

import (
	"strconv"
	"strings"
)

// IDs parses a flexible task-ID argument list into a deduplicated, ordered
// set of positive integers.
//
// Tokens may carry commas themselves ("1,2,3"), arrive as separate arguments
// ("1" "2" "3"), or mix both forms. Empty pieces produced by stray commas are
// dropped. A piece that is not a positive integer is a hard error naming that
// piece; an input with no IDs at all yields ErrNoIDs instead. Duplicates keep
// their first-seen position so batch operations apply in a deterministic
// order.
func IDs(args []string) ([]int, error) {
	var ids []int
	seen := make(map[int]bool)
	for _, arg := range args {
		for _, piece := range strings.Split(arg, ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if !allDigits(piece) {
				return nil, &ParseError{Input: piece, Reason: "task IDs must be positive integers"}
			}
			id, err := strconv.Atoi(piece)
			if err != nil || id <= 0 {
				return nil, &ParseError{Input: piece, Reason: "task IDs must be positive integers"}
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, ErrNoIDs
	}
	return ids, nil
}

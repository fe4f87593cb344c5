package quiz

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// AnswerKey maps 1-based question positions to the correct choice's letter
// ("A".."D"). The mapping is sparse: positions without a recorded answer are
// simply absent, never zero or empty.
type AnswerKey map[int]string

// Letter returns the recorded answer for a position, if any.
func (k AnswerKey) Letter(position int) (string, bool) {
	letter, ok := k[position]
	return letter, ok
}

// Positions returns the recorded positions in ascending order.
func (k AnswerKey) Positions() []int {
	if len(k) == 0 {
		return nil
	}
	positions := make([]int, 0, len(k))
	for position := range k {
		positions = append(positions, position)
	}
	sort.Ints(positions)
	return positions
}

// Validate checks that every entry targets an existing question and carries a
// recognised choice letter.
func (k AnswerKey) Validate(questionCount int) error {
	for position, letter := range k {
		if position < 1 || position > questionCount {
			return fmt.Errorf("quiz: answer key position %d outside 1..%d", position, questionCount)
		}
		switch strings.ToUpper(strings.TrimSpace(letter)) {
		case "A", "B", "C", "D":
		default:
			return fmt.Errorf("quiz: answer key position %d has invalid letter %q", position, letter)
		}
	}
	return nil
}

// ComputeScore converts a match count into a 0..100 score, rounding to the
// nearest integer. A zero total scores zero rather than dividing by zero.
func ComputeScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Grade compares submitted choice letters against the key in order. Every
// question counts toward the total; positions missing from the key or from
// the response slice simply never match.
func (z Quiz) Grade(responses []string) (correct, total int) {
	total = len(z.Questions)
	for i := range z.Questions {
		letter, ok := z.Key.Letter(i + 1)
		if !ok || i >= len(responses) {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(responses[i]), letter) {
			correct++
		}
	}
	return correct, total
}

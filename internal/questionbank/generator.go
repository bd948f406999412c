// Package questionbank produces the arithmetic seed content served by
// the question engine. Generation is deterministic for a given seed so
// that every instance of the process sees the same bank.
package questionbank

import (
	"fmt"
	"math/rand"
	"strconv"

	"mathrush/internal/config"
	"mathrush/internal/domain"
)

const choicesPerQuestion = 4

type operation struct {
	symbol string
	apply  func(a, b int) int
}

var (
	opAdd = operation{"+", func(a, b int) int { return a + b }}
	opSub = operation{"-", func(a, b int) int { return a - b }}
	opMul = operation{"×", func(a, b int) int { return a * b }}
	opDiv = operation{"÷", func(a, b int) int { return a / b }}
)

// operationsForLevel picks the operations a level draws from. Lower
// levels stay with addition and subtraction; multiplication and exact
// division enter at levels 3 and 4.
func operationsForLevel(level int) []operation {
	switch {
	case level <= 1:
		return []operation{opAdd}
	case level == 2:
		return []operation{opAdd, opSub}
	case level == 3:
		return []operation{opAdd, opSub, opMul}
	default:
		return []operation{opAdd, opSub, opMul, opDiv}
	}
}

// Generate builds the question bank described by the configuration.
func Generate(cfg config.QuestionsConfig) []*domain.QuestionRecord {
	rng := rand.New(rand.NewSource(cfg.Seed))
	questions := make([]*domain.QuestionRecord, 0, cfg.MaxLevel*cfg.PerLevel)
	for level := 1; level <= cfg.MaxLevel; level++ {
		ops := operationsForLevel(level)
		for i := 0; i < cfg.PerLevel; i++ {
			op := ops[i%len(ops)]
			questions = append(questions, newQuestion(rng, level, i, op))
		}
	}
	return questions
}

func newQuestion(rng *rand.Rand, level, index int, op operation) *domain.QuestionRecord {
	a, b := operands(rng, level, op)
	answer := op.apply(a, b)
	return &domain.QuestionRecord{
		ID:      fmt.Sprintf("q%d-%d", level, index+1),
		Level:   level,
		Prompt:  fmt.Sprintf("What is %d %s %d?", a, op.symbol, b),
		Choices: choices(rng, answer),
		Answer:  strconv.Itoa(answer),
	}
}

// operands picks a pair that keeps the result a non-negative integer:
// subtraction never goes below zero and division is always exact.
func operands(rng *rand.Rand, level int, op operation) (int, int) {
	max := 10 * level
	switch op.symbol {
	case opSub.symbol:
		a := rng.Intn(max) + 1
		b := rng.Intn(a) + 1
		return a, b
	case opMul.symbol:
		return rng.Intn(11) + 2, rng.Intn(11) + 2
	case opDiv.symbol:
		b := rng.Intn(8) + 2
		quotient := rng.Intn(8) + 2
		return b * quotient, b
	default:
		return rng.Intn(max) + 1, rng.Intn(max) + 1
	}
}

// choices returns the answer and three distinct distractors near it,
// shuffled.
func choices(rng *rand.Rand, answer int) []string {
	seen := map[int]bool{answer: true}
	values := []int{answer}
	for len(values) < choicesPerQuestion {
		offset := rng.Intn(5) + 1
		if rng.Intn(2) == 0 {
			offset = -offset
		}
		candidate := answer + offset
		if candidate < 0 || seen[candidate] {
			continue
		}
		seen[candidate] = true
		values = append(values, candidate)
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}

package potmanager

import "errors"

// ErrAlreadyApplied is an error when payouts are applied twice
var ErrAlreadyApplied = errors.New("payouts have already been applied")

// Payouts are the balance adjustments that settle a game
// A positive amount is paid to the participant, a negative amount is collected from them
type Payouts struct {
	order   []Participant
	amounts map[int]int
	applied bool
}

func newPayouts() *Payouts {
	return &Payouts{
		order:   make([]Participant, 0),
		amounts: make(map[int]int),
	}
}

func (p *Payouts) add(pt Participant, amount int) {
	if _, ok := p.amounts[pt.ID()]; !ok {
		p.order = append(p.order, pt)
	}

	p.amounts[pt.ID()] += amount
}

// Amount returns the adjustment for the participant
func (p *Payouts) Amount(pt Participant) int {
	return p.amounts[pt.ID()]
}

// Map returns the adjustments keyed by participant ID
func (p *Payouts) Map() map[int]int {
	m := make(map[int]int, len(p.amounts))
	for id, amount := range p.amounts {
		m[id] = amount
	}

	return m
}

// Credits returns the total paid to participants
func (p *Payouts) Credits() int {
	total := 0
	for _, amount := range p.amounts {
		if amount > 0 {
			total += amount
		}
	}

	return total
}

// Debits returns the total collected from participants, as a positive number
func (p *Payouts) Debits() int {
	total := 0
	for _, amount := range p.amounts {
		if amount < 0 {
			total -= amount
		}
	}

	return total
}

// Apply adjusts every participant's balance. Payouts can only be applied once
func (p *Payouts) Apply() error {
	if p.applied {
		return ErrAlreadyApplied
	}

	p.applied = true
	for _, pt := range p.order {
		if amount := p.amounts[pt.ID()]; amount != 0 {
			pt.AdjustBalance(amount)
		}
	}

	return nil
}

package scheduler

import "github.com/wandstem/tdmasched/internal/conflict"

// Transmission is the human-readable projection of one scheduled
// one-hop transmission: a (timeslot, src, dst) row. Informational only
// — it is derived from Schedule, never the other way around.
type Transmission struct {
	Timeslot int
	Src, Dst int
}

// Project aggregates consecutive TX/RX entry pairs of a Schedule into
// Transmission rows, per spec §6. Schedule entries are always appended
// as a TX immediately followed by its paired RX, so this is a simple
// stride-2 walk.
func Project(s Schedule) []Transmission {
	out := make([]Transmission, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		tx, rx := s[i], s[i+1]
		if tx.Activity != conflict.TX || rx.Activity != conflict.RX || tx.Timeslot != rx.Timeslot {
			continue // defensive: a well-formed Schedule never hits this
		}
		out = append(out, Transmission{Timeslot: tx.Timeslot, Src: tx.Node, Dst: rx.Node})
	}
	return out
}

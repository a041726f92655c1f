package combat

import (
	"github.com/udisondev/arpgcore/internal/game/stat"
)

// Combatant is anything that can deal and receive hits.
type Combatant interface {
	stat.Reader
	Name() string
	Position() (x, y float64)
	TakeDamage(amount float64) (dealt float64, killed bool)
	IsDead() bool
}

// Hit describes one resolved attack.
type Hit struct {
	Snapshot Snapshot
	Attacker string
	Target   string
	// Damage is the mitigated damage actually removed from the target's health.
	Damage float64
	Killed bool
	X, Y   float64
}

// HitObserver receives every resolved hit (damage numbers, combat log, kill credit).
type HitObserver interface {
	OnHit(h Hit)
}

// ObserverFunc adapts a function to HitObserver.
type ObserverFunc func(Hit)

// OnHit implements HitObserver.
func (f ObserverFunc) OnHit(h Hit) { f(h) }

// Recorder is a HitObserver that keeps every hit it sees.
type Recorder struct {
	Hits []Hit
}

// OnHit implements HitObserver.
func (r *Recorder) OnHit(h Hit) { r.Hits = append(r.Hits, h) }

// Kills returns how many recorded hits were killing blows.
func (r *Recorder) Kills() int {
	n := 0
	for _, h := range r.Hits {
		if h.Killed {
			n++
		}
	}
	return n
}

// Resolver runs the full attack pipeline: snapshot, mitigation, health, notify.
type Resolver struct {
	calc     *Calculator
	observer HitObserver
}

// NewResolver creates a Resolver. observer may be nil.
func NewResolver(calc *Calculator, observer HitObserver) *Resolver {
	return &Resolver{calc: calc, observer: observer}
}

// Resolve performs one attack from attacker on defender.
// Nothing happens and no observer is notified when either side is nil or dead.
// Combatants holding a nil pointer must report IsDead as true.
func (r *Resolver) Resolve(attacker, defender Combatant, skillMultiplier float64) (Hit, bool) {
	if attacker == nil || defender == nil || attacker.IsDead() || defender.IsDead() {
		return Hit{}, false
	}

	snap := r.calc.ComputeSnapshot(attacker, skillMultiplier, attacker.Name())
	damage := ApplyMitigation(snap, defender)
	dealt, killed := defender.TakeDamage(damage)

	x, y := defender.Position()
	hit := Hit{
		Snapshot: snap,
		Attacker: attacker.Name(),
		Target:   defender.Name(),
		Damage:   dealt,
		Killed:   killed,
		X:        x,
		Y:        y,
	}
	if r.observer != nil {
		r.observer.OnHit(hit)
	}
	return hit, true
}
